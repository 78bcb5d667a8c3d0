package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceCoincidentPointsIsZero(t *testing.T) {
	f := Force(V(10, 20), V(10, 20), 5, 2)
	assert.Equal(t, Vec{}, f)
}

func TestForceInverseSquare(t *testing.T) {
	// p1 is 10 units right of p2, positive kqq pushes along p1 - p2
	f := Force(V(10, 0), V(0, 0), 100, 2)
	assert.InDelta(t, 1.0, f.X, 1e-12)
	assert.Equal(t, 0.0, f.Y)

	f = Force(V(20, 0), V(0, 0), 100, 2)
	assert.InDelta(t, 0.25, f.X, 1e-12)
}

func TestForceDefaultPower(t *testing.T) {
	assert.Equal(t, Force(V(3, 4), V(0, 0), 7, 2), Force(V(3, 4), V(0, 0), 7, 0))
}

func TestForceCustomPower(t *testing.T) {
	f := Force(V(0, 10), V(0, 0), 100, 1)
	assert.InDelta(t, 10.0, f.Y, 1e-12)
}

func TestForcePositiveKqqPointsTowardFirstPoint(t *testing.T) {
	// the sweater force is evaluated as Force(sweater, balloon, ...) so a
	// positive kqq pulls the balloon toward the sweater
	sweater := V(0, 0)
	balloon := V(100, 0)
	f := Force(sweater, balloon, 50, 2)
	assert.Less(t, f.X, 0.0)
}

func TestClampMagnitude(t *testing.T) {
	v := ClampMagnitude(V(3, 4), 1)
	assert.InDelta(t, 1.0, Length(v), 1e-12)
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)

	small := V(0.001, 0)
	assert.Equal(t, small, ClampMagnitude(small, 1))
	assert.Equal(t, Vec{}, ClampMagnitude(Vec{}, 1))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(V(1, 1), V(4, 5)))
	assert.False(t, math.IsNaN(Distance(V(0, 0), V(0, 0))))
}

func TestClampFloat(t *testing.T) {
	assert.Equal(t, 0.0, ClampFloat(-1, 0, 10))
	assert.Equal(t, 10.0, ClampFloat(11, 0, 10))
	assert.Equal(t, 5.5, ClampFloat(5.5, 0, 10))
}
