package sim

import (
	"github.com/automoto/balloons-static/shared/describe"
	"github.com/automoto/balloons-static/shared/gamemath"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BalloonSnapshot is a copy of the parts of a balloon worth reporting.
type BalloonSnapshot struct {
	Label     string       `json:"label"`
	Location  gamemath.Vec `json:"location"`
	Velocity  gamemath.Vec `json:"velocity"`
	Charge    int          `json:"charge"`
	Region    string       `json:"region"`
	Direction string       `json:"direction"`
	Dragged   bool         `json:"dragged"`
	Visible   bool         `json:"visible"`
	Amount    string       `json:"amount"`
}

func (b BalloonSnapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("label", b.Label)
	enc.AddFloat64("x", b.Location.X)
	enc.AddFloat64("y", b.Location.Y)
	enc.AddInt("charge", b.Charge)
	enc.AddString("region", b.Region)
	enc.AddBool("dragged", b.Dragged)
	return nil
}

// Snapshot is the state of a whole simulation at one tick.
type Snapshot struct {
	Tick          uint64            `json:"tick"`
	WallVisible   bool              `json:"wallVisible"`
	SweaterCharge int               `json:"sweaterCharge"`
	Balloons      []BalloonSnapshot `json:"balloons"`
}

func (s Snapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("tick", s.Tick)
	enc.AddInt("sweaterCharge", s.SweaterCharge)
	return enc.AddArray("balloons", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, b := range s.Balloons {
			if err := arr.AppendObject(b); err != nil {
				return err
			}
		}
		return nil
	}))
}

// Field logs the snapshot under "state".
func (s Snapshot) Field() zap.Field {
	return zap.Object("state", s)
}

// Snapshot copies the current state. Hidden balloons are included.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.Ticks(),
		WallVisible:   s.WallVisible(),
		SweaterCharge: s.SweaterCharge(),
	}
	for _, b := range s.Balloons() {
		d := b.Data()
		snap.Balloons = append(snap.Balloons, BalloonSnapshot{
			Label:     d.Label,
			Location:  d.Location,
			Velocity:  d.Velocity,
			Charge:    d.Charge,
			Region:    d.Region.String(),
			Direction: d.Direction.String(),
			Dragged:   d.Dragged,
			Visible:   d.Visible,
			Amount:    describe.RelativeCharge(d.Charge).String(),
		})
	}
	return snap
}
