package gamemath

import (
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecApproxEqual(a, b math2.Vec2) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y)
}

func TestNeg(t *testing.T) {
	if got := Neg(math2.NewVec2(1, -2)); !vecApproxEqual(got, math2.NewVec2(-1, 2)) {
		t.Errorf("Neg() = %+v, want (-1,2)", got)
	}
	if got := Neg(math2.Vec2{}); !got.IsZero() {
		t.Errorf("Neg(zero) = %+v, want zero", got)
	}
}

func TestNormalizeDoesNotMutateArgument(t *testing.T) {
	v := math2.NewVec2(2, 3)
	_ = Normalize(v)
	_ = Neg(v)

	if v != math2.NewVec2(2, 3) {
		t.Errorf("argument changed to %+v", v)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   math2.Vec2
		want math2.Vec2
	}{
		{"axis aligned", math2.NewVec2(0, -7), math2.NewVec2(0, -1)},
		{"diagonal", math2.NewVec2(3, 4), math2.NewVec2(0.6, 0.8)},
		{"already unit", math2.NewVec2(1, 0), math2.NewVec2(1, 0)},
		{"tiny", math2.NewVec2(1e-7, 0), math2.NewVec2(1, 0)},
		{"tiny negative", math2.NewVec2(0, -3e-8), math2.NewVec2(0, -1)},
		{"zero vector", math2.Vec2{}, math2.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !vecApproxEqual(got, tt.want) {
				t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Normalize(%+v) produced NaN", tt.in)
			}
		})
	}
}
