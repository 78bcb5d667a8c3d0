package components

import (
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/yohamta/donburi"
)

type WallData struct {
	Bounds  gamemath.Rect
	Visible bool
}

// X is the face of the wall that balloons touch.
func (w *WallData) X() float64 {
	return w.Bounds.MinX
}

var Wall = donburi.NewComponentType[WallData]()
