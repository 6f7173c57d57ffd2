// Package gamemath holds the pure math shared by the server and every front-end.
// It must stay free of ebiten so the server binary remains headless, and every
// function here must produce the same result on all targets.
package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// zeroEpsilon is the magnitude below which a direction component counts as zero.
const zeroEpsilon = 1e-6

// IsZero reports whether both components of v are effectively zero.
func IsZero(v math2.Vec2) bool {
	return math.Abs(v.X) < zeroEpsilon && math.Abs(v.Y) < zeroEpsilon
}

// BaseAngle returns the facing angle in radians for an attack direction,
// in the renderer's convention (y grows downward).
//
// The formula is atan(y/x) shifted by π when x is positive. It does not match
// atan2 in every quadrant; renderers and hit detection both depend on this
// exact mapping, so keep it. A zero direction yields 0.
func BaseAngle(direction math2.Vec2) float64 {
	if IsZero(direction) {
		return 0
	}
	angle := math.Atan(direction.Y / direction.X)
	if direction.X > 0 {
		angle += math.Pi
	}
	return angle
}

// AimVector returns the unit facing vector that makes BaseAngle open toward
// `to` when the attack originates at `from`. Coincident points give a zero vector.
func AimVector(from, to math2.Vec2) math2.Vec2 {
	return Normalize(math2.Vec2{X: from.X - to.X, Y: from.Y - to.Y})
}

// Normalize scales v to unit length. A zero-length vector is returned unchanged.
func Normalize(v math2.Vec2) math2.Vec2 {
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if mag == 0 {
		return v
	}
	return math2.Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b math2.Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
