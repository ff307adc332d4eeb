package sim

import (
	"errors"
	"testing"
)

type failingSource struct{ err error }

func (f failingSource) Next() (Event, error) { return nil, f.err }

func TestRunEndToEnd(t *testing.T) {
	surface := &recordingSurface{}
	s := newTestSimulation(t, surface)
	startY := s.Body().Position.Y

	src := NewScriptSource(
		Press{Button: ButtonUp},
		UpdateTick{DT: 0.016},
		RenderTick{},
		Release{Button: ButtonUp},
		Press{Button: ButtonQuit},
		UpdateTick{DT: 0.016},
		RenderTick{},
	)

	stats, err := Run(src, s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !s.Terminated() {
		t.Fatal("simulation not terminated")
	}
	if s.Body().Position.Y >= startY {
		t.Errorf("position.y = %v, want less than %v", s.Body().Position.Y, startY)
	}
	if src.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want 2 events left unpulled", src.Remaining())
	}
	want := Stats{Renders: 1, Updates: 1, Presses: 2, Releases: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestRunStopsAtEndOfSource(t *testing.T) {
	s := newTestSimulation(t, nil)
	src := NewScriptSource(UpdateTick{DT: 0.016}, Press{Button: ButtonUnknown}, nil)

	stats, err := Run(src, s)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.Terminated() {
		t.Error("simulation terminated without quit")
	}
	if stats.Updates != 1 || stats.Ignored != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunWrapsSourceErrors(t *testing.T) {
	boom := errors.New("window lost")
	s := newTestSimulation(t, nil)

	_, err := Run(failingSource{err: boom}, s)
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped %v", err, boom)
	}
}

func TestParseButton(t *testing.T) {
	tests := map[string]Button{
		"up":     ButtonUp,
		" Down ": ButtonDown,
		"LEFT":   ButtonLeft,
		"right":  ButtonRight,
		"quit":   ButtonQuit,
		"jump":   ButtonUnknown,
		"":       ButtonUnknown,
	}
	for in, want := range tests {
		if got := ParseButton(in); got != want {
			t.Errorf("ParseButton(%q) = %v, want %v", in, got, want)
		}
	}
}
