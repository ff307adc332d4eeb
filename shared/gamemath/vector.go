package gamemath

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// Neg returns the opposite of v.
func Neg(v math2.Vec2) math2.Vec2 {
	return v.MulScalar(-1)
}

// Normalize returns the unit vector pointing the same way as v. Only the
// exact zero vector maps to zero; unlike Vec2.Normalized there is no
// epsilon cutoff, so very slow motion still normalizes to length one.
func Normalize(v math2.Vec2) math2.Vec2 {
	if v.IsZero() {
		return math2.Vec2{}
	}
	return v.DivScalar(v.Magnitude())
}
