// Package describe turns model quantities into the discrete buckets the
// description layer talks about. It produces enums, never strings meant for
// users.
package describe

import (
	"math"

	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
)

// MaxReleaseVelocity is the fastest a released balloon is expected to move,
// in pixels per millisecond.
const MaxReleaseVelocity = 0.4

type Speed int

const (
	SpeedNone Speed = iota
	SpeedVerySlow
	SpeedSlow
	SpeedQuick
	SpeedVeryQuick
)

var speedNames = [...]string{
	SpeedNone:      "NONE",
	SpeedVerySlow:  "VERY_SLOW",
	SpeedSlow:      "SLOW",
	SpeedQuick:     "QUICK",
	SpeedVeryQuick: "VERY_QUICK",
}

func (s Speed) String() string {
	if s < 0 || int(s) >= len(speedNames) {
		return "UNKNOWN"
	}
	return speedNames[s]
}

type speedRange struct {
	speed    Speed
	min, max float64
}

// how fast a released balloon drifts back to the sweater, by charge
var chargeSpeeds = []speedRange{
	{SpeedVerySlow, 1, 14},
	{SpeedSlow, 15, 29},
	{SpeedQuick, 30, 44},
	{SpeedVeryQuick, 45, leveldata.SweaterChargeCount},
}

var velocitySpeeds = []speedRange{
	{SpeedVerySlow, 0, 0.004},
	{SpeedSlow, 0.004, 0.008},
	{SpeedQuick, 0.008, 0.1},
	{SpeedVeryQuick, 0.1, math.MaxFloat64},
}

func lookup(table []speedRange, v float64) Speed {
	for _, r := range table {
		if v >= r.min && v <= r.max {
			return r.speed
		}
	}
	return SpeedNone
}

// SpeedFromCharge buckets the magnitude of a balloon's charge. A neutral
// balloon has no speed.
func SpeedFromCharge(charge int) Speed {
	return lookup(chargeSpeeds, math.Abs(float64(charge)))
}

// SpeedFromVelocity buckets a velocity magnitude. Shared bounds go to the
// slower bucket.
func SpeedFromVelocity(v float64) Speed {
	return lookup(velocitySpeeds, math.Abs(v))
}

type Amount int

const (
	AmountNone Amount = iota
	AmountAFew
	AmountSeveral
	AmountMany
)

var amountNames = [...]string{
	AmountNone:    "NO",
	AmountAFew:    "A_FEW",
	AmountSeveral: "SEVERAL",
	AmountMany:    "MANY",
}

func (a Amount) String() string {
	if a < 0 || int(a) >= len(amountNames) {
		return "UNKNOWN"
	}
	return amountNames[a]
}

// RelativeCharge buckets a charge count. Shared bounds go to the smaller
// amount; anything past the sweater's total is many.
func RelativeCharge(charge int) Amount {
	n := charge
	if n < 0 {
		n = -n
	}
	switch {
	case n == 0:
		return AmountNone
	case n <= 15:
		return AmountAFew
	case n <= 40:
		return AmountSeveral
	default:
		return AmountMany
	}
}

type Object int

const (
	ObjectSweater Object = iota
	ObjectWall
)

func (o Object) String() string {
	if o == ObjectWall {
		return "WALL"
	}
	return "SWEATER"
}

// AttractedObject is what a balloon pulled in direction d moves toward.
func AttractedObject(d gamemath.Direction) Object {
	if d == gamemath.DirectionRight {
		return ObjectWall
	}
	return ObjectSweater
}

// StarterPairs is the number of neutral charge pairs every balloon carries.
var StarterPairs = len(leveldata.BalloonStarterCharges)

// VisibleCharges returns how many positive and negative charges a balloon
// shows under the given charge display mode.
func VisibleCharges(mode string, charge int) (positive, negative int) {
	extra := 0
	if charge < 0 {
		extra = -charge
	}
	switch mode {
	case config.ShowChargesNone:
		return 0, 0
	case config.ShowChargesDiff:
		return 0, extra
	default:
		return StarterPairs, StarterPairs + extra
	}
}
