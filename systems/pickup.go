package systems

import (
	"errors"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// PickupRect is the area around a balloon that rubs charges off the sweater.
// It is offset toward the balloon's left side.
func (p *Physics) PickupRect(b *components.BalloonData) gamemath.Rect {
	c := p.cfg.Physics
	return gamemath.Rect{
		MinX: b.Location.X - c.PickupOffsetX1,
		MinY: b.Location.Y - c.PickupOffsetY,
		MaxX: b.Location.X + c.PickupOffsetX2,
		MaxY: b.Location.Y + b.Height + c.PickupOffsetY,
	}
}

// PickupReference is the point nearest charges are measured from.
func (p *Physics) PickupReference(b *components.BalloonData) gamemath.Vec {
	return p.PickupRect(b).Center()
}

// DraggingCenter is the pickup rect's size measured from the balloon's
// corner, the anchor the viewer draws the pickup area around.
func (p *Physics) DraggingCenter(b *components.BalloonData) gamemath.Vec {
	r := p.PickupRect(b)
	return gamemath.Vec{X: b.Location.X + r.Width()/2, Y: b.Location.Y + r.Height()/2}
}

// TransferCharge moves the sweater charge nearest the pickup reference onto
// the balloon if the balloon is on the sweater. At most one charge moves per
// call. Reports whether a charge moved.
func (p *Physics) TransferCharge(w donburi.World, entry *donburi.Entry) bool {
	sweater := sweaterOf(w)
	if sweater == nil || !p.OnSweater(w, entry) {
		return false
	}
	b := components.Balloon.Get(entry)

	idx, err := sweater.FindNearestUnclaimed(p.PickupReference(b))
	if errors.Is(err, components.ErrNoUnclaimedCharges) {
		// rubbed clean
		return false
	}
	if err != nil {
		p.violation(err, zap.String("balloon", b.Label))
		return false
	}

	// claim first so the balloon never gains a charge the sweater still has
	if err := sweater.Claim(idx); err != nil {
		p.violation(err, zap.String("balloon", b.Label), zap.Int("charge", idx))
		return false
	}
	b.Claimed = append(b.Claimed, idx)
	b.Charge--

	p.log.Debug("charge transferred",
		zap.String("balloon", b.Label),
		zap.Int("index", idx),
		zap.Int("balloonCharge", b.Charge),
	)
	ChargeTransferredEvent.Publish(w, ChargeTransferred{
		Balloon:       entry.Entity(),
		Label:         b.Label,
		Index:         idx,
		BalloonCharge: b.Charge,
		SweaterCharge: sweater.NetCharge(),
	})
	return true
}
