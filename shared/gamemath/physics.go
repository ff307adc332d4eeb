package gamemath

import (
	math2 "github.com/yohamta/donburi/features/math"
)

// FrictionForce returns the drag force opposing velocity, with magnitude
// gravity*mass*coefficient. A body at rest feels no friction.
func FrictionForce(velocity math2.Vec2, gravity, mass, coefficient float64) math2.Vec2 {
	return Normalize(Neg(velocity)).MulScalar(gravity * mass * coefficient)
}

// SemiImplicitEuler advances velocity from acceleration first, then position
// from the already-updated velocity.
func SemiImplicitEuler(position, velocity, acceleration math2.Vec2, dt float64) (math2.Vec2, math2.Vec2) {
	velocity = velocity.Add(acceleration.MulScalar(dt))
	position = position.Add(velocity.MulScalar(dt))
	return position, velocity
}
