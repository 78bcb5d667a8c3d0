package factory

import (
	"math"

	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneEntries are the entities of one scene.
type SceneEntries struct {
	Space    *donburi.Entry
	Clock    *donburi.Entry
	Sweater  *donburi.Entry
	Wall     *donburi.Entry
	Balloons []*donburi.Entry
}

// CreateScene spawns every entity described by scene. The first two balloons
// are paired with each other.
func CreateScene(e *ecs.ECS, scene *leveldata.Scene, wallVisible bool, samples int) SceneEntries {
	var s SceneEntries
	s.Space = CreateSpace(e,
		int(math.Ceil(scene.Width)), int(math.Ceil(scene.Height)),
		SpaceCellSize, SpaceCellSize)
	s.Clock = CreateClock(e)
	s.Sweater = CreateSweater(e, scene)
	s.Wall = CreateWall(e, scene.Wall, wallVisible)

	for _, spawn := range scene.Spawns {
		s.Balloons = append(s.Balloons, CreateBalloon(e, spawn, scene.BalloonWidth, scene.BalloonHeight, samples))
	}
	if len(s.Balloons) >= 2 {
		PairBalloons(s.Balloons[0], s.Balloons[1])
	}
	return s
}
