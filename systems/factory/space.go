package factory

import (
	"github.com/automoto/balloons-static/archetypes"
	"github.com/automoto/balloons-static/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCellSize is the resolv cell edge in pixels.
const SpaceCellSize = 16

func CreateSpace(e *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

func CreateClock(e *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(e)
}

// addToSpace creates a rectangle object linked to entry and adds it to the
// space if one exists.
func addToSpace(e *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
