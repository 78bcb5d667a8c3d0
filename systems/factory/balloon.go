package factory

import (
	"github.com/automoto/balloons-static/archetypes"
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBalloon spawns a neutral balloon at its spawn point. samples is the
// length of the drag velocity buffers.
func CreateBalloon(e *ecs.ECS, spawn leveldata.BalloonSpawn, width, height float64, samples int) *donburi.Entry {
	balloon := archetypes.Balloon.Spawn(e)

	loc := gamemath.V(spawn.X, spawn.Y)
	components.Balloon.SetValue(balloon, components.BalloonData{
		Label:           spawn.Label,
		Width:           width,
		Height:          height,
		Location:        loc,
		Samples:         components.NewVelocityBuffer(samples),
		Visible:         spawn.Visible,
		Other:           donburi.Null,
		InitialLocation: loc,
		InitialVisible:  spawn.Visible,
	})
	addToSpace(e, balloon, loc.X, loc.Y, width, height, tags.ResolvBalloon)
	return balloon
}

// PairBalloons links two balloons to each other.
func PairBalloons(a, b *donburi.Entry) {
	components.Balloon.Get(a).Other = b.Entity()
	components.Balloon.Get(b).Other = a.Entity()
}
