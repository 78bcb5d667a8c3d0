package sim

import (
	"context"
	"testing"

	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/systems"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSim(t *testing.T, mutate ...func(*config.Config)) *Simulation {
	t.Helper()
	cfg := config.Default()
	cfg.Flags.Assertions = true
	for _, m := range mutate {
		m(cfg)
	}
	s, err := New(cfg, leveldata.Default(), zaptest.NewLogger(t))
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s, err := New(nil, nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Len(t, s.Balloons(), 2)
	assert.True(t, s.WallVisible())
	assert.False(t, s.TwoBalloons())
	assert.Zero(t, s.SweaterCharge())
	assert.Zero(t, s.Ticks())

	yellow, ok := s.Balloon("yellow")
	require.True(t, ok)
	assert.Equal(t, playarea.CenterPlayArea, yellow.Data().Region.Column)

	_, ok = s.Balloon("red")
	assert.False(t, ok)
}

func TestNewRejects(t *testing.T) {
	cfg := config.Default()
	cfg.Loop.TickRate = 0
	_, err := New(cfg, nil, nil)
	assert.Error(t, err)

	scene := leveldata.Default()
	scene.Spawns = nil
	_, err = New(config.Default(), scene, nil)
	assert.ErrorIs(t, err, leveldata.ErrMissingObject)
}

func TestStepDeliversEvents(t *testing.T) {
	s := newSim(t)
	var moves []systems.LocationChanged
	s.OnLocationChanged(func(ev systems.LocationChanged) { moves = append(moves, ev) })

	yellow, _ := s.Balloon("yellow")
	yellow.Data().Velocity = gamemath.V(0.1, 0)
	s.Step(1.0 / 60)

	require.Len(t, moves, 1)
	assert.Equal(t, "yellow", moves[0].Label)
	assert.Equal(t, gamemath.DirectionRight, moves[0].Direction)
	assert.Equal(t, uint64(1), s.Ticks())
}

func TestRubAndRelease(t *testing.T) {
	s := newSim(t)
	var transfers, releases int
	s.OnChargeTransferred(func(systems.ChargeTransferred) { transfers++ })
	s.OnBalloonReleased(func(systems.BalloonReleased) { releases++ })

	loop := NewGameLoop(s, 60, 0).WithScript(RubAndRelease(30, 200))
	n, err := loop.RunTicks(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, 232, n)

	yellow, _ := s.Balloon("yellow")
	b := yellow.Data()
	assert.Less(t, b.Charge, 0)
	assert.Equal(t, -b.Charge, transfers)
	assert.Equal(t, -b.Charge, s.SweaterCharge())
	assert.Equal(t, 1, releases)
	assert.False(t, b.Dragged)
	// pulled back toward the sweater
	assert.Less(t, b.Location.X, 328.0)

	s.Reset()
	assert.Zero(t, b.Charge)
	assert.Zero(t, s.SweaterCharge())
	assert.Equal(t, b.InitialLocation, b.Location)
}

func TestBalloonCommands(t *testing.T) {
	s := newSim(t)
	yellow, _ := s.Balloon("yellow")

	require.NoError(t, yellow.Jump(playarea.AtWall))
	assert.True(t, yellow.TouchingWall())
	assert.False(t, yellow.StickingToWall())

	yellow.Grab()
	yellow.Nudge(systems.KeyState{Left: true})
	assert.Equal(t, 549.0, yellow.Data().Location.X)
	yellow.Nudge(systems.KeyState{})
	assert.Equal(t, 549.0, yellow.Data().Location.X)

	yellow.DragTo(gamemath.V(200, 100))
	assert.True(t, yellow.OnSweater())
	yellow.Release()
	assert.False(t, yellow.Data().Dragged)

	c, err := yellow.DescribedRegion()
	require.NoError(t, err)
	assert.NotEqual(t, playarea.RegionNone, c.Location)
}

func TestWallAndSecondBalloon(t *testing.T) {
	s := newSim(t)
	var walls []bool
	s.OnWallVisibilityChanged(func(ev systems.WallVisibilityChanged) { walls = append(walls, ev.Visible) })

	s.SetWallVisible(false)
	assert.False(t, s.WallVisible())
	assert.Equal(t, []bool{false}, walls)

	s.SetTwoBalloons(true)
	assert.True(t, s.TwoBalloons())
	green, _ := s.Balloon("green")
	green.Grab()
	s.SetTwoBalloons(false)
	assert.False(t, s.TwoBalloons())
	assert.False(t, green.Data().Dragged)

	s.SetTwoBalloons(true)
	s.ResetBalloons()
	assert.True(t, s.TwoBalloons())
	assert.False(t, s.WallVisible())

	s.Reset()
	assert.False(t, s.TwoBalloons())
	assert.True(t, s.WallVisible())
}

func TestSnapshot(t *testing.T) {
	s := newSim(t)
	snap := s.Snapshot()

	assert.True(t, snap.WallVisible)
	require.Len(t, snap.Balloons, 2)
	assert.Equal(t, "yellow", snap.Balloons[0].Label)
	assert.Equal(t, gamemath.V(440, 100), snap.Balloons[0].Location)
	assert.Equal(t, "NO", snap.Balloons[0].Amount)
	assert.False(t, snap.Balloons[1].Visible)
}
