package systems

import (
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/yohamta/donburi"
)

// SweaterForce is the force the sweater exerts on b.
func (p *Physics) SweaterForce(sweater *components.SweaterData, b *components.BalloonData) gamemath.Vec {
	kqq := -p.cfg.Physics.ForceConstant * float64(sweater.NetCharge()) * float64(b.Charge)
	return gamemath.Force(sweater.Center, b.Center(), kqq, p.cfg.Physics.ForcePower)
}

// OtherBalloonForce is the force other exerts on b. Dragged or hidden
// balloons take no part.
func (p *Physics) OtherBalloonForce(b, other *components.BalloonData) gamemath.Vec {
	if other == nil || b.Dragged || !b.Visible || !other.Visible {
		return gamemath.Vec{}
	}
	kqq := p.cfg.Physics.ForceConstant * float64(b.Charge) * float64(other.Charge)
	return gamemath.Force(b.Center(), other.Center(), kqq, p.cfg.Physics.ForcePower)
}

// WallForce returns the induced attraction toward a visible wall and whether
// b is charged and close enough to feel it.
func (p *Physics) WallForce(wall *components.WallData, b *components.BalloonData) (gamemath.Vec, bool) {
	if wall == nil || !wall.Visible || b.Charge >= p.cfg.Physics.WallChargeThreshold {
		return gamemath.Vec{}, false
	}
	charge := float64(b.Charge)
	relDist := wall.X() - b.Location.X - b.Width
	if relDist > p.cfg.Physics.WallRange+charge/p.cfg.Physics.WallRangeChargeDiv {
		return gamemath.Vec{}, false
	}
	return gamemath.Vec{X: -p.cfg.Physics.WallForce * charge / 20}, true
}

// TotalForce is the net force on the balloon in entry. A wall close enough to
// attract the balloon overrides every other contribution.
func (p *Physics) TotalForce(w donburi.World, entry *donburi.Entry) gamemath.Vec {
	b := components.Balloon.Get(entry)

	if f, ok := p.WallForce(wallOf(w), b); ok {
		return f
	}

	var sum gamemath.Vec
	if sweater := sweaterOf(w); sweater != nil {
		sum = p.SweaterForce(sweater, b)
	}
	sum = gamemath.Add(sum, p.OtherBalloonForce(b, otherOf(w, b)))

	// a larger force moves the balloon across the arena in a single step
	return gamemath.ClampMagnitude(sum, p.cfg.Physics.MaxForce)
}

// AttractedDirection is Right when the net force pulls toward the wall,
// Left otherwise.
func (p *Physics) AttractedDirection(w donburi.World, entry *donburi.Entry) gamemath.Direction {
	if p.TotalForce(w, entry).X > 0 {
		return gamemath.DirectionRight
	}
	return gamemath.DirectionLeft
}

// updateInducedCharge records whether b is polarizing the wall and how far
// the wall's charges are displaced, as a fraction of the largest possible
// balloon charge.
func (p *Physics) updateInducedCharge(w donburi.World, b *components.BalloonData) {
	_, ok := p.WallForce(wallOf(w), b)
	b.InducingCharge = ok
	if !ok {
		b.ChargeDisplacement = 0
		return
	}
	b.ChargeDisplacement = float64(-b.Charge) / float64(leveldata.SweaterChargeCount)
}
