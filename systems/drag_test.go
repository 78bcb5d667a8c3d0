package systems

import (
	"errors"
	"testing"

	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestRelease(t *testing.T) {
	f := newFixture(t)
	var got []BalloonReleased
	BalloonReleasedEvent.Subscribe(f.world, func(_ donburi.World, ev BalloonReleased) {
		got = append(got, ev)
	})
	b := f.balloon(f.yellow)

	// releasing a balloon nobody holds does nothing
	f.phys.Release(f.world, f.yellow)
	events.ProcessAllEvents(f.world)
	assert.Empty(t, got)

	f.phys.Grab(f.yellow)
	b.Velocity = gamemath.V(0.3, 0.3)
	b.TimeSinceRelease = 1000
	f.place(f.yellow, 470, 120)
	f.phys.Release(f.world, f.yellow)

	assert.False(t, b.Dragged)
	assert.Equal(t, gamemath.Vec{}, b.Velocity)
	assert.Zero(t, b.TimeSinceRelease)
	assert.Equal(t, gamemath.V(470, 120), b.LocationOnRelease)

	events.ProcessAllEvents(f.world)
	require.Len(t, got, 1)
	assert.Equal(t, gamemath.V(470, 120), got[0].Location)

	f.phys.Step(f.world, f.yellow, tick)
	assert.InDelta(t, 1000.0/60, b.TimeSinceRelease, 1e-9)
}

func TestSetDraggedPositionClamps(t *testing.T) {
	tests := []struct {
		name        string
		wallVisible bool
		pos         gamemath.Vec
		want        gamemath.Vec
	}{
		{"inside", true, gamemath.V(300, 200), gamemath.V(300, 200)},
		{"past wall", true, gamemath.V(700, 50), gamemath.V(554, 50)},
		{"past right edge", false, gamemath.V(700, 50), gamemath.V(634, 50)},
		{"above and left", true, gamemath.V(-50, -20), gamemath.V(0, 0)},
		{"below", false, gamemath.V(100, 1000), gamemath.V(100, 282)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(c *config.Config) { c.Flags.WallVisible = tt.wallVisible })
			f.phys.Grab(f.yellow)
			f.phys.SetDraggedPosition(f.world, f.yellow, tt.pos)
			assert.Equal(t, tt.want, f.balloon(f.yellow).Location)
		})
	}
}

func TestKeyboardDelta(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, gamemath.V(5, 0), f.phys.KeyboardDelta(KeyState{Right: true}))
	assert.Equal(t, gamemath.V(-5, -5), f.phys.KeyboardDelta(KeyState{Left: true, Up: true}))
	assert.Equal(t, gamemath.V(0, 1.25), f.phys.KeyboardDelta(KeyState{Down: true, Shift: true}))
	assert.Equal(t, gamemath.Vec{}, f.phys.KeyboardDelta(KeyState{Shift: true}))
}

func TestApplyKeyboardDeltaStopsAtWall(t *testing.T) {
	f := newFixture(t)
	f.phys.Grab(f.yellow)
	f.place(f.yellow, 550, 100)

	f.phys.ApplyKeyboardDelta(f.world, f.yellow, 10, 0)

	b := f.balloon(f.yellow)
	assert.Equal(t, gamemath.V(554, 100), b.Location)
	assert.True(t, f.phys.TouchingWall(f.world, b))
	assert.False(t, f.phys.StickingToWall(f.world, b))
}

func TestJumpLandsExactly(t *testing.T) {
	for _, target := range JumpTargets {
		t.Run(target.String(), func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.phys.Jump(f.world, f.yellow, target))

			b := f.balloon(f.yellow)
			x, ok := f.area.Location(target)
			require.True(t, ok)
			assert.Equal(t, x, b.Center().X)
			assert.Equal(t, 100.0, b.Location.Y)
			assert.Equal(t, target, b.Region.Location)
			assert.Equal(t, target, b.Region.Landmark)
		})
	}
}

func TestJumpToWallTouches(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.phys.Jump(f.world, f.yellow, playarea.AtWall))

	b := f.balloon(f.yellow)
	assert.Equal(t, 554.0, b.Location.X)
	assert.True(t, f.phys.TouchingWall(f.world, b))
	assert.True(t, f.phys.RightAtWallLocation(b))
	assert.Zero(t, f.phys.DistanceToWall(b))
}

func TestJumpUnknownTarget(t *testing.T) {
	t.Run("assertions", func(t *testing.T) {
		f := newFixture(t)
		assert.Panics(t, func() {
			_ = f.phys.Jump(f.world, f.yellow, playarea.LeftArm)
		})
	})

	t.Run("logged", func(t *testing.T) {
		f := newFixture(t, func(c *config.Config) { c.Flags.Assertions = false })
		err := f.phys.Jump(f.world, f.yellow, playarea.LeftArm)
		assert.True(t, errors.Is(err, playarea.ErrUnclassified))
		assert.Equal(t, gamemath.V(440, 100), f.balloon(f.yellow).Location)
	})
}

func TestSetWallVisible(t *testing.T) {
	f := newFixture(t)
	var got []WallVisibilityChanged
	WallVisibilityChangedEvent.Subscribe(f.world, func(_ donburi.World, ev WallVisibilityChanged) {
		got = append(got, ev)
	})

	f.phys.SetWallVisible(f.world, false)
	f.phys.Grab(f.yellow)
	f.phys.SetDraggedPosition(f.world, f.yellow, gamemath.V(600, 100))
	b := f.balloon(f.yellow)
	require.Equal(t, 600.0, b.Location.X)
	assert.False(t, f.phys.TouchingWall(f.world, b))

	f.phys.SetWallVisible(f.world, true)
	assert.Equal(t, gamemath.V(554, 100), b.Location)
	assert.True(t, b.Contacts.TouchingWall)

	// no change, no event
	f.phys.SetWallVisible(f.world, true)

	events.ProcessAllEvents(f.world)
	require.Len(t, got, 2)
	assert.False(t, got[0].Visible)
	assert.True(t, got[1].Visible)
}

func TestSetWallVisibleRefreshesContacts(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.phys.Jump(f.world, f.yellow, playarea.AtWall))
	b := f.balloon(f.yellow)
	require.True(t, b.Contacts.TouchingWall)

	f.phys.SetWallVisible(f.world, false)
	assert.Equal(t, gamemath.V(554, 100), b.Location)
	assert.False(t, b.Contacts.TouchingWall)
	assert.Equal(t, playarea.RightPlayArea, b.Region.Location)
}
