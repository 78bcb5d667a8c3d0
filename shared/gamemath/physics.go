package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// DefaultForcePower is the inverse-square exponent used when callers pass 0.
const DefaultForcePower = 2.0

// Vec is the 2D vector used for every position, velocity and force.
type Vec = dmath.Vec2

// V builds a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func Add(a, b Vec) Vec {
	return Vec{X: a.X + b.X, Y: a.Y + b.Y}
}

func Sub(a, b Vec) Vec {
	return Vec{X: a.X - b.X, Y: a.Y - b.Y}
}

func Scale(v Vec, s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean magnitude of v.
func Length(v Vec) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns |a - b|.
func Distance(a, b Vec) float64 {
	return Length(Sub(a, b))
}

// ClampMagnitude scales v down so that |v| <= max, keeping its direction.
func ClampMagnitude(v Vec, max float64) Vec {
	mag := Length(v)
	if mag <= max || mag == 0 {
		return v
	}
	return Scale(v, max/mag)
}

// Force returns the Coulomb-like force between two points:
// unit(p1 - p2) * kqq / |p1 - p2|^power. Coincident points produce a zero
// vector. A power of 0 selects DefaultForcePower.
func Force(p1, p2 Vec, kqq, power float64) Vec {
	if power == 0 {
		power = DefaultForcePower
	}

	diff := Sub(p1, p2)
	r := Length(diff)
	if r == 0 {
		return Vec{}
	}

	unit := Scale(diff, 1/r)
	return Scale(unit, kqq/math.Pow(r, power))
}

// ClampFloat clamps value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
