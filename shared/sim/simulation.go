// Package sim holds the backend-independent simulation core: one body, its
// input state and the event dispatch that drives them. Nothing in here knows
// about windows, key codes or graphics APIs.
package sim

import (
	"image/color"
	"log/slog"
)

// State is the lifecycle state of a Simulation.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Simulation owns one Body, one InputState and the gravity constant, and
// dispatches events to them. It is not safe for concurrent use; events must
// be handled one at a time on a single goroutine.
type Simulation struct {
	body       *Body
	input      InputState
	gravity    float64
	background color.Color
	surface    Surface
	state      State
	logger     *slog.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithBackground sets the clear colour used on every render tick.
func WithBackground(c color.Color) Option {
	return func(s *Simulation) {
		s.background = c
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// New creates a running simulation. The surface is borrowed: the caller keeps
// ownership and may pass nil to run without drawing.
func New(body *Body, surface Surface, gravity float64, opts ...Option) *Simulation {
	s := &Simulation{
		body:       body,
		gravity:    gravity,
		surface:    surface,
		background: color.Black,
		state:      Running,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulation) Body() *Body             { return s.body }
func (s *Simulation) Input() InputState       { return s.input }
func (s *Simulation) Gravity() float64        { return s.gravity }
func (s *Simulation) State() State            { return s.state }
func (s *Simulation) Terminated() bool        { return s.state == Terminated }
func (s *Simulation) Surface() Surface        { return s.surface }
func (s *Simulation) Background() color.Color { return s.background }

// Handle processes a single event and reports whether it had any effect.
// Once the simulation has terminated every event is dropped.
func (s *Simulation) Handle(ev Event) bool {
	if s.state == Terminated {
		return false
	}

	switch e := ev.(type) {
	case RenderTick:
		return s.render()
	case UpdateTick:
		s.update(e.DT)
		return true
	case Press:
		return s.press(e.Button)
	case Release:
		return s.release(e.Button)
	}
	return false
}

func (s *Simulation) render() bool {
	if s.surface == nil {
		return false
	}
	s.surface.Clear(s.background)
	s.body.Render(s.surface)
	return true
}

func (s *Simulation) update(dt float64) {
	friction := s.body.Update(dt, s.input, s.gravity)
	s.logger.Debug("body updated",
		"dt", dt,
		"friction_x", friction.X,
		"friction_y", friction.Y,
		"x", s.body.Position.X,
		"y", s.body.Position.Y,
	)
}

func (s *Simulation) press(b Button) bool {
	if b == ButtonQuit {
		s.state = Terminated
		s.logger.Info("quit requested, simulation terminated")
		return true
	}
	d, ok := b.Direction()
	if !ok {
		return false
	}
	s.input.Press(d)
	return true
}

func (s *Simulation) release(b Button) bool {
	d, ok := b.Direction()
	if !ok {
		return false
	}
	s.input.Release(d)
	return true
}
