package systems

import (
	"fmt"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Grab starts dragging a balloon.
func (p *Physics) Grab(entry *donburi.Entry) {
	p.setDragged(entry, true)
}

// Release lets go of a balloon. It stops dead and the release timer restarts.
func (p *Physics) Release(w donburi.World, entry *donburi.Entry) {
	b := components.Balloon.Get(entry)
	if !b.Dragged {
		return
	}
	p.setDragged(entry, false)
	b.Velocity = gamemath.Vec{}
	b.LocationOnRelease = b.Location

	BalloonReleasedEvent.Publish(w, BalloonReleased{
		Balloon:  entry.Entity(),
		Label:    b.Label,
		Location: b.Location,
	})
}

func (p *Physics) setDragged(entry *donburi.Entry, dragged bool) {
	b := components.Balloon.Get(entry)
	if b.Dragged == dragged {
		return
	}
	b.Dragged = dragged
	if !dragged {
		b.TimeSinceRelease = 0
	}
}

// SetDraggedPosition moves the balloon's top-left corner to the point under
// the pointer, limited to the drag bounds.
func (p *Physics) SetDraggedPosition(w donburi.World, entry *donburi.Entry, pos gamemath.Vec) {
	bounds := p.area.DragBounds(WallVisible(w))
	p.SetLocation(w, entry, bounds.ClosestPoint(pos))
}

// ApplyKeyboardDelta nudges the balloon by (dx, dy), limited to the drag
// bounds.
func (p *Physics) ApplyKeyboardDelta(w donburi.World, entry *donburi.Entry, dx, dy float64) {
	b := components.Balloon.Get(entry)
	p.SetDraggedPosition(w, entry, gamemath.Add(b.Location, gamemath.V(dx, dy)))
}

// KeyState is the set of drag keys held down this tick.
type KeyState struct {
	Left, Right, Up, Down bool
	Shift                 bool
}

// KeyboardDelta converts held keys into a per tick movement.
func (p *Physics) KeyboardDelta(k KeyState) gamemath.Vec {
	step := p.cfg.Drag.PositionDelta
	if k.Shift {
		step *= p.cfg.Drag.ShiftKeyMultiplier
	}
	var d gamemath.Vec
	if k.Left {
		d.X = -step
	} else if k.Right {
		d.X = step
	}
	if k.Up {
		d.Y = -step
	} else if k.Down {
		d.Y = step
	}
	return d
}

// JumpTargets are the locations a balloon can jump to from the keyboard.
var JumpTargets = []playarea.Region{
	playarea.AtWall,
	playarea.AtNearSweater,
	playarea.AtNearWall,
	playarea.AtCenterPlayArea,
}

// Jump moves the balloon's center to the exact x of a critical location,
// keeping its height. The location is set as is so that exact comparisons
// against the critical x hold afterwards.
func (p *Physics) Jump(w donburi.World, entry *donburi.Entry, target playarea.Region) error {
	x, ok := p.area.Location(target)
	if !ok {
		err := fmt.Errorf("jump to %s: %w", target, playarea.ErrUnclassified)
		p.violation(err)
		return err
	}
	b := components.Balloon.Get(entry)
	c := b.Center()
	loc := gamemath.Vec{X: x - b.Width/2, Y: c.Y - b.Height/2}
	p.SetLocation(w, entry, loc)
	p.log.Debug("jump", zap.String("balloon", b.Label), zap.Stringer("target", target))
	return nil
}

// SetWallVisible shows or hides the wall. Balloons beyond the new drag bounds
// are pulled back inside.
func (p *Physics) SetWallVisible(w donburi.World, visible bool) {
	wall := wallOf(w)
	if wall == nil || wall.Visible == visible {
		return
	}
	wall.Visible = visible

	bounds := p.area.DragBounds(visible)
	tags.Balloon.Each(w, func(entry *donburi.Entry) {
		b := components.Balloon.Get(entry)
		if clamped := bounds.ClosestPoint(b.Location); clamped != b.Location {
			p.SetLocation(w, entry, clamped)
			return
		}
		p.Refresh(w, entry)
	})
	WallVisibilityChangedEvent.Publish(w, WallVisibilityChanged{Visible: visible})
}
