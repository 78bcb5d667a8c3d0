package sim

import (
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Balloon is a handle to one balloon of a simulation. Commands take effect
// immediately and their events are delivered before they return.
type Balloon struct {
	sim   *Simulation
	entry *donburi.Entry
}

// Balloon looks a balloon up by label.
func (s *Simulation) Balloon(label string) (Balloon, bool) {
	for _, e := range s.entries.Balloons {
		if components.Balloon.Get(e).Label == label {
			return Balloon{sim: s, entry: e}, true
		}
	}
	return Balloon{}, false
}

// Balloons returns every balloon in spawn order.
func (s *Simulation) Balloons() []Balloon {
	out := make([]Balloon, 0, len(s.entries.Balloons))
	for _, e := range s.entries.Balloons {
		out = append(out, Balloon{sim: s, entry: e})
	}
	return out
}

func (b Balloon) Entry() *donburi.Entry { return b.entry }

// Data returns the live balloon state. Callers must not modify it.
func (b Balloon) Data() *components.BalloonData {
	return components.Balloon.Get(b.entry)
}

func (b Balloon) Label() string { return b.Data().Label }

func (b Balloon) flush() {
	events.ProcessAllEvents(b.sim.ecs.World)
}

// Grab starts a drag.
func (b Balloon) Grab() {
	b.sim.phys.Grab(b.entry)
}

// Release ends a drag.
func (b Balloon) Release() {
	b.sim.phys.Release(b.sim.ecs.World, b.entry)
	b.flush()
}

// DragTo moves the balloon's top-left corner under the pointer.
func (b Balloon) DragTo(pos gamemath.Vec) {
	b.sim.phys.SetDraggedPosition(b.sim.ecs.World, b.entry, pos)
	b.flush()
}

// Nudge moves the balloon by one keyboard step for the held keys.
func (b Balloon) Nudge(keys systems.KeyState) {
	d := b.sim.phys.KeyboardDelta(keys)
	if d == (gamemath.Vec{}) {
		return
	}
	b.sim.phys.ApplyKeyboardDelta(b.sim.ecs.World, b.entry, d.X, d.Y)
	b.flush()
}

// Jump moves the balloon's center to a critical location.
func (b Balloon) Jump(target playarea.Region) error {
	err := b.sim.phys.Jump(b.sim.ecs.World, b.entry, target)
	b.flush()
	return err
}

// DescribedRegion classifies the point of the balloon a description talks
// about.
func (b Balloon) DescribedRegion() (playarea.Classification, error) {
	return b.sim.phys.DescribedRegion(b.sim.ecs.World, b.entry)
}

// AttractedDirection is where the net force pulls the balloon.
func (b Balloon) AttractedDirection() gamemath.Direction {
	return b.sim.phys.AttractedDirection(b.sim.ecs.World, b.entry)
}

func (b Balloon) OnSweater() bool {
	return b.sim.phys.OnSweater(b.sim.ecs.World, b.entry)
}

func (b Balloon) TouchingWall() bool {
	return b.sim.phys.TouchingWall(b.sim.ecs.World, b.Data())
}

func (b Balloon) StickingToWall() bool {
	return b.sim.phys.StickingToWall(b.sim.ecs.World, b.Data())
}
