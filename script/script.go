// Package script reads YAML event scripts for the headless runner.
//
//	events:
//	  - press: up
//	  - update: 0.016
//	    repeat: 30
//	  - render: true
//	  - release: up
//	  - press: quit
package script

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/automoto/drift/shared/sim"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStep is returned for a step that does not describe exactly one event.
var ErrInvalidStep = errors.New("invalid script step")

// Step is one line of a script. Exactly one of Press, Release, Update or
// Render must be set. Repeat emits the event that many times.
type Step struct {
	Press   string   `yaml:"press,omitempty"`
	Release string   `yaml:"release,omitempty"`
	Update  *float64 `yaml:"update,omitempty"`
	Render  bool     `yaml:"render,omitempty"`
	Repeat  int      `yaml:"repeat,omitempty"`
}

// Script is a whole event script.
type Script struct {
	Viewport sim.Viewport `yaml:"viewport"`
	Steps    []Step       `yaml:"events"`
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a script and checks every step.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (st Step) validate() error {
	set := 0
	if st.Press != "" {
		set++
	}
	if st.Release != "" {
		set++
	}
	if st.Update != nil {
		set++
		if dt := *st.Update; math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
			return fmt.Errorf("%w: update dt must be a finite positive number, got %v", ErrInvalidStep, dt)
		}
	}
	if st.Render {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: want exactly one of press, release, update, render; got %d", ErrInvalidStep, set)
	}
	if st.Repeat < 0 {
		return fmt.Errorf("%w: negative repeat %d", ErrInvalidStep, st.Repeat)
	}
	return nil
}

// event converts a validated step. Button names the simulation does not
// know become sim.ButtonUnknown and are ignored when handled.
func (st Step) event(vp sim.Viewport) sim.Event {
	switch {
	case st.Press != "":
		return sim.Press{Button: sim.ParseButton(st.Press)}
	case st.Release != "":
		return sim.Release{Button: sim.ParseButton(st.Release)}
	case st.Update != nil:
		return sim.UpdateTick{DT: *st.Update}
	default:
		return sim.RenderTick{Viewport: vp}
	}
}

// Events expands the script into the event sequence it describes.
func (s *Script) Events() []sim.Event {
	var events []sim.Event
	for _, step := range s.Steps {
		n := step.Repeat
		if n == 0 {
			n = 1
		}
		ev := step.event(s.Viewport)
		for i := 0; i < n; i++ {
			events = append(events, ev)
		}
	}
	return events
}

// Source returns an EventSource that replays the script.
func (s *Script) Source() *sim.ScriptSource {
	return sim.NewScriptSource(s.Events()...)
}
