package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Zero is the zero vector.
var Zero = dmath.Vec2{}

// Normalized returns v scaled to unit length. Unlike Vec2.Normalized, a
// zero-length or NaN vector returns Zero.
func Normalized(v dmath.Vec2) dmath.Vec2 {
	l := v.Magnitude()
	if l == 0 || math.IsNaN(l) {
		return Zero
	}
	return v.DivScalar(l)
}

// DirectionTo returns the unit vector pointing from `from` to `to`.
func DirectionTo(from, to dmath.Vec2) dmath.Vec2 {
	return Normalized(to.Sub(from))
}

// MoveToward moves from toward to by at most delta, never overshooting.
func MoveToward(from, to dmath.Vec2, delta float64) dmath.Vec2 {
	diff := to.Sub(from)
	dist := diff.Magnitude()
	if dist <= delta || dist == 0 {
		return to
	}
	return from.Add(diff.MulScalar(delta / dist))
}
