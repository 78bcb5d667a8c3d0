package factory

import (
	"github.com/automoto/balloons-static/archetypes"
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(e *ecs.ECS, bounds gamemath.Rect, visible bool) *donburi.Entry {
	wall := archetypes.Wall.Spawn(e)
	components.Wall.SetValue(wall, components.WallData{Bounds: bounds, Visible: visible})
	addToSpace(e, wall, bounds.MinX, bounds.MinY, bounds.Width(), bounds.Height(), tags.ResolvWall)
	return wall
}
