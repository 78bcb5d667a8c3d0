package systems

import (
	"math"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateBalloons steps every visible balloon by the clock's dt.
func (p *Physics) UpdateBalloons(e *ecs.ECS) {
	var dt float64
	if clockEntry, ok := components.Clock.First(e.World); ok {
		clock := components.Clock.Get(clockEntry)
		dt = clock.Dt
		clock.Ticks++
	}

	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		if !components.Balloon.Get(entry).Visible {
			return
		}
		p.Step(e.World, entry, dt)
	})
}

// Step advances one balloon by dtSeconds.
func (p *Physics) Step(w donburi.World, entry *donburi.Entry, dtSeconds float64) {
	b := components.Balloon.Get(entry)

	// the model runs in milliseconds
	dt := dtSeconds * 1000
	if dt > p.cfg.Physics.MaxStepMs {
		// most likely the window just regained focus
		dt = p.cfg.Physics.NominalStepMs
	}

	if b.Dragged {
		p.dragBalloon(w, entry, dt)
	} else {
		p.applyForce(w, entry, dt)
		b.TimeSinceRelease += dt
	}

	b.OldLocation = b.Location
	b.HasOldLoc = true
	p.updateInducedCharge(w, b)
}

// dragBalloon samples the drag velocity and tries to pick up a charge when
// the balloon is rubbed fast enough. Reports whether a charge moved.
func (p *Physics) dragBalloon(w donburi.World, entry *donburi.Entry, dt float64) bool {
	b := components.Balloon.Get(entry)

	// nothing to compare against before the first tick
	if !b.HasOldLoc || dt <= 0 {
		return false
	}

	vx := (b.Location.X - b.OldLocation.X) / dt
	vy := (b.Location.Y - b.OldLocation.Y) / dt
	b.Samples.Push(vx, vy)
	b.DragVelocity = gamemath.V(vx, vy)

	avgX, avgY := b.Samples.Mean()
	speed := math.Sqrt(avgX*avgX + avgY*avgY)
	if speed < p.cfg.Physics.ThresholdSpeed {
		return false
	}
	return p.TransferCharge(w, entry)
}

// applyForce integrates one free flight step. A balloon whose center is in the
// sweater's charged area stays put.
func (p *Physics) applyForce(w donburi.World, entry *donburi.Entry, dt float64) {
	b := components.Balloon.Get(entry)

	if sweater := sweaterOf(w); sweater != nil && sweater.InChargedArea(b.Center()) {
		b.Velocity = gamemath.Vec{}
		return
	}

	force := p.TotalForce(w, entry)
	newVel := gamemath.Add(b.Velocity, gamemath.Scale(force, dt))
	newLoc := gamemath.Add(b.Location, gamemath.Scale(b.Velocity, dt))

	bounds := p.area.ArenaBounds(WallVisible(w))
	if newLoc.X+b.Width >= bounds.MaxX {
		newLoc.X = bounds.MaxX - b.Width
		newVel.X = math.Min(newVel.X, 0)
	}
	if newLoc.Y+b.Height >= bounds.MaxY {
		newLoc.Y = bounds.MaxY - b.Height
		newVel.Y = math.Min(newVel.Y, 0)
	}
	if newLoc.X <= bounds.MinX {
		newLoc.X = bounds.MinX
		newVel.X = math.Max(newVel.X, 0)
	}
	if newLoc.Y <= bounds.MinY {
		newLoc.Y = bounds.MinY
		newVel.Y = math.Max(newVel.Y, 0)
	}

	// location first so that listeners see the new location with the new
	// velocity
	p.SetLocation(w, entry, newLoc)
	b.Velocity = newVel
}

// SetLocation moves a balloon and refreshes everything derived from its
// location. Setting the current location again changes nothing.
func (p *Physics) SetLocation(w donburi.World, entry *donburi.Entry, loc gamemath.Vec) {
	b := components.Balloon.Get(entry)
	from := b.Location
	if from == loc {
		return
	}
	b.Location = loc

	if entry.HasComponent(components.Object) {
		components.Object.Get(entry).MoveTo(loc)
	}

	b.Direction = gamemath.ClassifyDirection(loc, from)
	b.Previous = b.Contacts
	b.Contacts = p.contacts(w, entry)

	region, err := p.area.Classify(b.Center(), WallVisible(w))
	if err != nil {
		p.violation(err, zap.String("balloon", b.Label))
	} else {
		b.Region = region
	}

	LocationChangedEvent.Publish(w, LocationChanged{
		Balloon:   entry.Entity(),
		Label:     b.Label,
		From:      from,
		To:        loc,
		Direction: b.Direction,
		Region:    b.Region,
	})
	if b.Contacts != b.Previous {
		ContactChangedEvent.Publish(w, ContactChanged{
			Balloon:  entry.Entity(),
			Label:    b.Label,
			Previous: b.Previous,
			Current:  b.Contacts,
		})
	}
}

func (p *Physics) contacts(w donburi.World, entry *donburi.Entry) components.ContactFlags {
	b := components.Balloon.Get(entry)
	return components.ContactFlags{
		NearSweater:       p.NearSweater(b),
		NearWall:          p.NearWall(b),
		NearRightEdge:     p.NearRightEdge(b),
		StickingToSweater: p.StickingToSweater(w, b),
		OnSweater:         p.OnSweater(w, entry),
		TouchingWall:      p.TouchingWall(w, b),
	}
}

// Reset returns a balloon to its initial state. The sweater must be reset in
// the same step or charge is no longer conserved.
func (p *Physics) Reset(w donburi.World, entry *donburi.Entry, keepVisibility bool) {
	b := components.Balloon.Get(entry)

	b.Samples.Reset()
	b.Charge = 0
	b.Claimed = nil
	b.Velocity = gamemath.Vec{}
	b.DragVelocity = gamemath.Vec{}
	p.SetLocation(w, entry, b.InitialLocation)
	if !keepVisibility {
		b.Visible = b.InitialVisible
	}
	p.setDragged(entry, false)
	b.InducingCharge = false
	b.ChargeDisplacement = 0

	BalloonResetEvent.Publish(w, BalloonReset{Balloon: entry.Entity(), Label: b.Label})
}

// Refresh recomputes the derived location state without moving the balloon,
// e.g. after the wall appears or disappears.
func (p *Physics) Refresh(w donburi.World, entry *donburi.Entry) {
	b := components.Balloon.Get(entry)
	b.Previous = b.Contacts
	b.Contacts = p.contacts(w, entry)
	if region, err := p.area.Classify(b.Center(), WallVisible(w)); err == nil {
		b.Region = region
	}
	if b.Contacts != b.Previous {
		ContactChangedEvent.Publish(w, ContactChanged{
			Balloon:  entry.Entity(),
			Label:    b.Label,
			Previous: b.Previous,
			Current:  b.Contacts,
		})
	}
}
