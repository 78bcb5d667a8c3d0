package tags

import "github.com/yohamta/donburi"

var (
	Balloon = donburi.NewTag().SetName("Balloon")
	Sweater = donburi.NewTag().SetName("Sweater")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for the collision space
const (
	ResolvBalloon = "balloon"
	ResolvSweater = "sweater"
	ResolvWall    = "wall"
)
