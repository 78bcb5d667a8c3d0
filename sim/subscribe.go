package sim

import (
	"github.com/automoto/balloons-static/systems"
	"github.com/yohamta/donburi"
)

// The On* helpers register listeners that run after each step, once the
// model is consistent again.

func (s *Simulation) OnChargeTransferred(fn func(systems.ChargeTransferred)) {
	systems.ChargeTransferredEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev systems.ChargeTransferred) {
		fn(ev)
	})
}

func (s *Simulation) OnLocationChanged(fn func(systems.LocationChanged)) {
	systems.LocationChangedEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev systems.LocationChanged) {
		fn(ev)
	})
}

func (s *Simulation) OnContactChanged(fn func(systems.ContactChanged)) {
	systems.ContactChangedEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev systems.ContactChanged) {
		fn(ev)
	})
}

func (s *Simulation) OnBalloonReleased(fn func(systems.BalloonReleased)) {
	systems.BalloonReleasedEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev systems.BalloonReleased) {
		fn(ev)
	})
}

func (s *Simulation) OnBalloonReset(fn func(systems.BalloonReset)) {
	systems.BalloonResetEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev systems.BalloonReset) {
		fn(ev)
	})
}

func (s *Simulation) OnWallVisibilityChanged(fn func(systems.WallVisibilityChanged)) {
	systems.WallVisibilityChangedEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev systems.WallVisibilityChanged) {
		fn(ev)
	})
}
