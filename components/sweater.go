package components

import (
	"errors"
	"fmt"

	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/yohamta/donburi"
)

var (
	ErrNoUnclaimedCharges   = errors.New("no unclaimed charges remain")
	ErrChargeAlreadyClaimed = errors.New("charge already claimed")
	ErrChargeOutOfRange     = errors.New("charge index out of range")
)

// PointCharge is a single charge at a fixed location.
type PointCharge struct {
	Location gamemath.Vec
	Claimed  bool
}

// ChargeSet is the sweater's pool of claimable charges.
type ChargeSet struct {
	Charges []PointCharge
}

// NewChargeSet creates an unclaimed charge at each location.
func NewChargeSet(locations []gamemath.Vec) ChargeSet {
	cs := ChargeSet{Charges: make([]PointCharge, len(locations))}
	for i, l := range locations {
		cs.Charges[i].Location = l
	}
	return cs
}

// FindNearestUnclaimed returns the index of the unclaimed charge closest to
// ref. Ties go to the charge scanned first.
func (cs *ChargeSet) FindNearestUnclaimed(ref gamemath.Vec) (int, error) {
	best := -1
	var bestDist float64
	for i, c := range cs.Charges {
		if c.Claimed {
			continue
		}
		d := gamemath.Distance(c.Location, ref)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, ErrNoUnclaimedCharges
	}
	return best, nil
}

// Claim marks charge i as moved off the sweater.
func (cs *ChargeSet) Claim(i int) error {
	if i < 0 || i >= len(cs.Charges) {
		return fmt.Errorf("claim %d of %d: %w", i, len(cs.Charges), ErrChargeOutOfRange)
	}
	if cs.Charges[i].Claimed {
		return fmt.Errorf("claim %d: %w", i, ErrChargeAlreadyClaimed)
	}
	cs.Charges[i].Claimed = true
	return nil
}

// Reset returns every charge to the sweater.
func (cs *ChargeSet) Reset() {
	for i := range cs.Charges {
		cs.Charges[i].Claimed = false
	}
}

// NetCharge is the positive imbalance left behind, one per claimed charge.
func (cs *ChargeSet) NetCharge() int {
	n := 0
	for _, c := range cs.Charges {
		if c.Claimed {
			n++
		}
	}
	return n
}

// Remaining is the number of unclaimed charges.
func (cs *ChargeSet) Remaining() int {
	return len(cs.Charges) - cs.NetCharge()
}

type SweaterData struct {
	ChargeSet

	Bounds      gamemath.Rect
	ChargedArea []gamemath.Vec
	// Center is where sweater forces originate.
	Center gamemath.Vec
}

// InChargedArea reports whether p lies inside the charged area polygon.
func (s *SweaterData) InChargedArea(p gamemath.Vec) bool {
	return gamemath.PolygonContains(s.ChargedArea, p)
}

var Sweater = donburi.NewComponentType[SweaterData]()
