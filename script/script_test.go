package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/drift/shared/sim"
)

const sample = `viewport:
  width: 400
  height: 400
events:
  - press: up
  - update: 0.016
    repeat: 3
  - render: true
  - release: up
  - press: jump
  - press: quit
`

func TestParseAndExpand(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := s.Events()
	want := []sim.Event{
		sim.Press{Button: sim.ButtonUp},
		sim.UpdateTick{DT: 0.016},
		sim.UpdateTick{DT: 0.016},
		sim.UpdateTick{DT: 0.016},
		sim.RenderTick{Viewport: sim.Viewport{Width: 400, Height: 400}},
		sim.Release{Button: sim.ButtonUp},
		sim.Press{Button: sim.ButtonUnknown},
		sim.Press{Button: sim.ButtonQuit},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestParseRejectsBadSteps(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty step", "events:\n  - repeat: 2\n"},
		{"two kinds", "events:\n  - press: up\n    render: true\n"},
		{"zero dt", "events:\n  - update: 0\n"},
		{"negative dt", "events:\n  - update: -0.5\n"},
		{"nan dt", "events:\n  - update: .nan\n"},
		{"infinite dt", "events:\n  - update: .inf\n"},
		{"negative infinite dt", "events:\n  - update: -.inf\n"},
		{"negative repeat", "events:\n  - render: true\n    repeat: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.content)); !errors.Is(err, ErrInvalidStep) {
				t.Errorf("Parse() error = %v, want ErrInvalidStep", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("events: {")); err == nil {
		t.Error("Parse() accepted malformed YAML")
	}
}

func TestScriptDrivesSimulation(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	body, err := sim.NewBody(sim.BodyParams{
		Mass:     0.01,
		Friction: 0.2,
		Size:     100,
	})
	if err != nil {
		t.Fatal(err)
	}
	simulation := sim.New(body, nil, 9.8)
	src := s.Source()

	stats, err := sim.Run(src, simulation)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !simulation.Terminated() {
		t.Error("script did not terminate the simulation")
	}
	if stats.Updates != 3 {
		t.Errorf("updates = %d, want 3", stats.Updates)
	}
	if body.Position.Y >= 0 {
		t.Errorf("position.y = %v, want negative after moving up", body.Position.Y)
	}
	if src.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", src.Remaining())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Steps) != 6 {
		t.Errorf("steps = %d, want 6", len(s.Steps))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v", err)
	}
}
