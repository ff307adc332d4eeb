package sim

import (
	"image/color"
	"io"
	"log/slog"
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-9

type drawCall struct {
	color     color.Color
	rect      Rect
	transform Transform
}

// recordingSurface captures the primitives issued against it.
type recordingSurface struct {
	ops    []string
	clears []color.Color
	draws  []drawCall
}

func (r *recordingSurface) Clear(c color.Color) {
	r.ops = append(r.ops, "clear")
	r.clears = append(r.clears, c)
}

func (r *recordingSurface) DrawFilledRectangle(c color.Color, rect Rect, t Transform) {
	r.ops = append(r.ops, "rect")
	r.draws = append(r.draws, drawCall{color: c, rect: rect, transform: t})
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBody(t *testing.T) *Body {
	t.Helper()
	b, err := NewBody(BodyParams{
		Position: math2.NewVec2(200, 200),
		Mass:     0.01,
		Friction: 0.2,
		Size:     100,
		Color:    color.Black,
	})
	if err != nil {
		t.Fatalf("NewBody() error = %v", err)
	}
	return b
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertVec(t *testing.T, name string, got, want math2.Vec2) {
	t.Helper()
	if !approxEqual(got.X, want.X) || !approxEqual(got.Y, want.Y) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}
