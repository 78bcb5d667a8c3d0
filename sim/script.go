package sim

import (
	"github.com/automoto/balloons-static/shared/gamemath"
	"go.uber.org/zap"
)

// RubAndRelease grabs the first balloon, rubs it up and down the sweater for
// rubTicks steps, lets go and watches it for flightTicks more.
func RubAndRelease(rubTicks, flightTicks int) Script {
	var (
		tick    int
		balloon Balloon
		start   gamemath.Vec
	)
	return func(s *Simulation) bool {
		defer func() { tick++ }()

		switch {
		case tick == 0:
			balloon = s.Balloons()[0]
			sweater := s.Scene().Sweater
			// overlapping the sweater's right side, center outside the charged area
			start = gamemath.V(sweater.MaxX-40, sweater.MinY+sweater.Height()/4)
			balloon.Grab()
			balloon.DragTo(start)
			s.log.Info("rubbing", zap.String("balloon", balloon.Label()))
		case tick <= rubTicks:
			dy := 0.0
			if tick%2 == 1 {
				dy = 12
			}
			balloon.DragTo(gamemath.V(start.X, start.Y+dy))
		case tick == rubTicks+1:
			balloon.Release()
			s.log.Info("released",
				zap.String("balloon", balloon.Label()),
				zap.Int("charge", balloon.Data().Charge),
			)
		case tick > rubTicks+flightTicks:
			return true
		}
		return false
	}
}
