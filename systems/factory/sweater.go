package factory

import (
	"slices"

	"github.com/automoto/balloons-static/archetypes"
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSweater(e *ecs.ECS, scene *leveldata.Scene) *donburi.Entry {
	sweater := archetypes.Sweater.Spawn(e)
	components.Sweater.SetValue(sweater, components.SweaterData{
		ChargeSet:   components.NewChargeSet(scene.SweaterCharges),
		Bounds:      scene.Sweater,
		ChargedArea: slices.Clone(scene.ChargedArea),
		Center:      scene.SweaterCenter(),
	})
	// one pixel of margin so that a balloon sharing an edge with the sweater
	// shares a cell with it
	b := scene.Sweater
	addToSpace(e, sweater, b.MinX-1, b.MinY-1, b.Width()+2, b.Height()+2, tags.ResolvSweater)
	return sweater
}
