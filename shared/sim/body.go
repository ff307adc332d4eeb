package sim

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/drift/shared/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// ErrInvalidBody is returned when a body is built with a physical parameter
// that is not a finite positive number.
var ErrInvalidBody = errors.New("invalid body")

// BodyParams holds the construction-time values of a Body.
type BodyParams struct {
	Position math2.Vec2
	Mass     float64
	Friction float64 // coefficient, not a force
	Size     float64 // side length of the rendered square
	Color    color.Color
}

// Body is the single controllable rigid square. Position, Velocity and
// Acceleration change every tick; mass, friction and size never do.
type Body struct {
	Position     math2.Vec2
	Velocity     math2.Vec2
	Acceleration math2.Vec2

	mass     float64
	friction float64
	size     float64
	color    color.Color
}

// NewBody creates a body at rest at p.Position.
func NewBody(p BodyParams) (*Body, error) {
	if !finitePositive(p.Mass) {
		return nil, fmt.Errorf("%w: mass must be a finite positive number, got %v", ErrInvalidBody, p.Mass)
	}
	if !finitePositive(p.Friction) {
		return nil, fmt.Errorf("%w: friction must be a finite positive number, got %v", ErrInvalidBody, p.Friction)
	}
	if !finitePositive(p.Size) {
		return nil, fmt.Errorf("%w: size must be a finite positive number, got %v", ErrInvalidBody, p.Size)
	}
	c := p.Color
	if c == nil {
		c = color.Black
	}
	return &Body{
		Position: p.Position,
		mass:     p.Mass,
		friction: p.Friction,
		size:     p.Size,
		color:    c,
	}, nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (b *Body) Mass() float64      { return b.mass }
func (b *Body) Friction() float64  { return b.friction }
func (b *Body) Size() float64      { return b.size }
func (b *Body) Color() color.Color { return b.color }

// Update advances the body by dt seconds and returns the friction force that
// was folded into Acceleration for the next tick.
//
// Input impulses are added to Acceleration every tick a direction is held and
// are never reset, so acceleration keeps growing while a key stays down.
func (b *Body) Update(dt float64, input InputState, gravity float64) math2.Vec2 {
	b.applyInput(input)
	b.Position, b.Velocity = gamemath.SemiImplicitEuler(b.Position, b.Velocity, b.Acceleration, dt)
	return b.applyFriction(gravity)
}

func (b *Body) applyInput(input InputState) {
	if input.Up {
		b.Acceleration.Y -= 1
	}
	if input.Down {
		b.Acceleration.Y += 1
	}
	if input.Left {
		b.Acceleration.X -= 1
	}
	if input.Right {
		b.Acceleration.X += 1
	}
}

func (b *Body) applyFriction(gravity float64) math2.Vec2 {
	force := gamemath.FrictionForce(b.Velocity, gravity, b.mass, b.friction)
	b.Acceleration = b.Acceleration.Add(force)
	return force
}

// Render draws the body as a filled square whose top-left corner sits at Position.
func (b *Body) Render(surface Surface) {
	surface.DrawFilledRectangle(
		b.color,
		Rect{W: b.size, H: b.size},
		Translate(b.Position.X, b.Position.Y),
	)
}
