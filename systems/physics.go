package systems

import (
	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/logging"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Physics runs the balloon model. It holds no simulation state of its own;
// everything mutable lives in the world.
type Physics struct {
	cfg  *config.Config
	area *playarea.Map
	log  *zap.Logger
}

func NewPhysics(cfg *config.Config, area *playarea.Map, logger *zap.Logger) *Physics {
	return &Physics{
		cfg:  cfg,
		area: area,
		log:  logging.OrNop(logger).Named("physics"),
	}
}

func (p *Physics) Area() *playarea.Map {
	return p.area
}

func (p *Physics) Config() *config.Config {
	return p.cfg
}

func sweaterOf(w donburi.World) *components.SweaterData {
	if e, ok := components.Sweater.First(w); ok {
		return components.Sweater.Get(e)
	}
	return nil
}

func wallOf(w donburi.World) *components.WallData {
	if e, ok := components.Wall.First(w); ok {
		return components.Wall.Get(e)
	}
	return nil
}

// WallVisible reports whether the wall is present in the scene.
func WallVisible(w donburi.World) bool {
	wall := wallOf(w)
	return wall != nil && wall.Visible
}

// otherOf returns the balloon paired with b, or nil.
func otherOf(w donburi.World, b *components.BalloonData) *components.BalloonData {
	if b.Other == donburi.Null || !w.Valid(b.Other) {
		return nil
	}
	entry := w.Entry(b.Other)
	if !entry.HasComponent(components.Balloon) {
		return nil
	}
	return components.Balloon.Get(entry)
}
