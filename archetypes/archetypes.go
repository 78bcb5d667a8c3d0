package archetypes

import (
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Balloon = newArchetype(
		tags.Balloon,
		components.Balloon,
		components.Object,
	)
	Sweater = newArchetype(
		tags.Sweater,
		components.Sweater,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
}
