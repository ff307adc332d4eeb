package sim

import "image/color"

// Surface is the drawing target the simulation renders onto. It is owned by
// the windowing backend and only borrowed by the simulation.
type Surface interface {
	Clear(c color.Color)
	DrawFilledRectangle(c color.Color, r Rect, t Transform)
}

// Rect is an axis-aligned rectangle in local coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Transform scales then translates. Rotation is not supported; the body is
// only ever translated.
type Transform struct {
	SX, SY float64
	TX, TY float64
}

// Identity returns the transform that leaves coordinates unchanged.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Translate returns a pure translation by (x, y).
func Translate(x, y float64) Transform {
	return Identity().Trans(x, y)
}

// Trans appends a translation by (x, y), expressed in t's local units.
func (t Transform) Trans(x, y float64) Transform {
	t.TX += x * t.SX
	t.TY += y * t.SY
	return t
}

// Apply maps r into target coordinates.
func (t Transform) Apply(r Rect) Rect {
	return Rect{
		X: r.X*t.SX + t.TX,
		Y: r.Y*t.SY + t.TY,
		W: r.W * t.SX,
		H: r.H * t.SY,
	}
}
