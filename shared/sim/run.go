package sim

import (
	"errors"
	"fmt"
	"io"
)

// EventSource delivers events one at a time. Next blocks until an event is
// available and returns io.EOF once the source is exhausted.
type EventSource interface {
	Next() (Event, error)
}

// Stats counts the events a Run loop handled, by kind.
type Stats struct {
	Renders  int
	Updates  int
	Presses  int
	Releases int
	Ignored  int
}

func (st *Stats) record(ev Event, handled bool) {
	if !handled {
		st.Ignored++
		return
	}
	switch ev.Kind() {
	case KindRender:
		st.Renders++
	case KindUpdate:
		st.Updates++
	case KindPress:
		st.Presses++
	case KindRelease:
		st.Releases++
	}
}

// Run pulls events from src and hands them to s until s terminates or src
// is exhausted. Nothing is pulled after termination.
func Run(src EventSource, s *Simulation) (Stats, error) {
	var stats Stats
	for !s.Terminated() {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("next event: %w", err)
		}
		if ev == nil {
			stats.Ignored++
			continue
		}
		stats.record(ev, s.Handle(ev))
	}
	return stats, nil
}

// ScriptSource replays a fixed list of events.
type ScriptSource struct {
	events []Event
	pos    int
}

// NewScriptSource returns a source that yields events in order, then io.EOF.
func NewScriptSource(events ...Event) *ScriptSource {
	return &ScriptSource{events: events}
}

// Next implements EventSource.
func (src *ScriptSource) Next() (Event, error) {
	if src.pos >= len(src.events) {
		return nil, io.EOF
	}
	ev := src.events[src.pos]
	src.pos++
	return ev, nil
}

// Remaining returns how many events have not been pulled yet.
func (src *ScriptSource) Remaining() int {
	return len(src.events) - src.pos
}
