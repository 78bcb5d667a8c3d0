package components

import (
	"errors"
	"testing"

	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCharges() ChargeSet {
	return NewChargeSet([]gamemath.Vec{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 20, Y: 0},
		{X: 10, Y: 10},
	})
}

func TestFindNearestUnclaimed(t *testing.T) {
	cs := testCharges()

	idx, err := cs.FindNearestUnclaimed(gamemath.V(9, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	// (10, 0) and (10, 10) are equally far, the first one scanned wins
	idx, err = cs.FindNearestUnclaimed(gamemath.V(10, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	require.NoError(t, cs.Claim(1))
	idx, err = cs.FindNearestUnclaimed(gamemath.V(10, 5))
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestClaimExhaustsCharges(t *testing.T) {
	cs := testCharges()
	ref := gamemath.V(100, 100)

	for i := 0; i < 4; i++ {
		idx, err := cs.FindNearestUnclaimed(ref)
		require.NoError(t, err)
		require.NoError(t, cs.Claim(idx))
		assert.Equal(t, i+1, cs.NetCharge())
		assert.Equal(t, 3-i, cs.Remaining())
	}

	_, err := cs.FindNearestUnclaimed(ref)
	assert.True(t, errors.Is(err, ErrNoUnclaimedCharges))
}

func TestClaimErrors(t *testing.T) {
	cs := testCharges()

	require.NoError(t, cs.Claim(2))
	assert.True(t, errors.Is(cs.Claim(2), ErrChargeAlreadyClaimed))
	assert.True(t, errors.Is(cs.Claim(-1), ErrChargeOutOfRange))
	assert.True(t, errors.Is(cs.Claim(4), ErrChargeOutOfRange))
	assert.Equal(t, 1, cs.NetCharge())
}

func TestChargeSetReset(t *testing.T) {
	cs := testCharges()
	require.NoError(t, cs.Claim(0))
	require.NoError(t, cs.Claim(3))

	cs.Reset()
	assert.Zero(t, cs.NetCharge())
	assert.Equal(t, 4, cs.Remaining())
	cs.Reset()
	assert.Equal(t, testCharges(), cs)
}

func TestInChargedArea(t *testing.T) {
	s := SweaterData{ChargedArea: []gamemath.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	assert.True(t, s.InChargedArea(gamemath.V(5, 5)))
	assert.False(t, s.InChargedArea(gamemath.V(15, 5)))
}

func TestVelocityBuffer(t *testing.T) {
	buf := NewVelocityBuffer(4)

	buf.Push(2, -1)
	x, y := buf.Mean()
	// squares averaged over every slot
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.25, y)

	for i := 0; i < 4; i++ {
		buf.Push(1, 0)
	}
	x, y = buf.Mean()
	assert.Equal(t, 1.0, x)
	assert.Zero(t, y)

	buf.Reset()
	x, y = buf.Mean()
	assert.Zero(t, x)
	assert.Zero(t, y)

	var empty VelocityBuffer
	empty.Push(3, 3)
	x, y = empty.Mean()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestBalloonGeometry(t *testing.T) {
	b := BalloonData{Width: 134, Height: 222, Location: gamemath.V(440, 100)}
	assert.Equal(t, gamemath.V(507, 211), b.Center())
	assert.Equal(t, 574.0, b.Right())

	b.SetCenter(gamemath.V(621, 211))
	assert.Equal(t, gamemath.V(554, 100), b.Location)
	assert.False(t, b.IsCharged())
	b.Charge = -1
	assert.True(t, b.IsCharged())
}
