package components

import (
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's box in the collision space.
type ObjectData struct {
	*resolv.Object
}

// MoveTo places the object's top-left corner at p and refreshes its cells.
func (o ObjectData) MoveTo(p gamemath.Vec) {
	if o.Object == nil {
		return
	}
	o.X, o.Y = p.X, p.Y
	o.Update()
}

// Rect returns the object's box.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.RectXYWH(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()
