package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/shared/gamemath"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/sim"
	"github.com/automoto/balloons-static/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// BalloonScene shows the simulation and feeds it pointer and keyboard input.
type BalloonScene struct {
	cfg   *config.Config
	scene *leveldata.Scene
	log   *zap.Logger
	store *systems.SettingsStore

	sim      *sim.Simulation
	renderer *systems.Renderer
	once     sync.Once
	err      error

	focus      int
	grabbed    *sim.Balloon
	grabOffset gamemath.Vec
	keyboard   bool // the grab was started from the keyboard
}

func NewBalloonScene(cfg *config.Config, scene *leveldata.Scene, store *systems.SettingsStore, logger *zap.Logger) *BalloonScene {
	if scene == nil {
		scene = leveldata.Default()
	}
	return &BalloonScene{cfg: cfg, scene: scene, store: store, log: logger}
}

func (bs *BalloonScene) Update() error {
	bs.once.Do(bs.configure)
	if bs.err != nil {
		return bs.err
	}

	bs.handleInput()

	dt := 1 / float64(ebiten.TPS())
	bs.sim.Step(dt)
	bs.renderer.UpdateWallCharges(bs.sim.ECS(), dt)
	return nil
}

func (bs *BalloonScene) Draw(screen *ebiten.Image) {
	if bs.sim == nil {
		return
	}
	bs.sim.ECS().Draw(screen)
}

// Size is the logical screen size: the play area plus the HUD strip.
func (bs *BalloonScene) Size() (int, int) {
	return int(bs.scene.Width), int(bs.scene.Height) + systems.HUDHeight
}

func (bs *BalloonScene) configure() {
	var saved *systems.SavedSettings
	if bs.store != nil {
		var err error
		if saved, err = bs.store.Load(); err != nil {
			bs.log.Warn("ignoring saved settings", zap.Error(err))
		}
		systems.ApplySavedSettings(&bs.cfg.Flags, saved)
	}

	s, err := sim.New(bs.cfg, bs.scene, bs.log)
	if err != nil {
		bs.err = fmt.Errorf("start simulation: %w", err)
		return
	}
	if saved != nil {
		s.SetTwoBalloons(saved.TwoBalloons)
	}
	s.OnChargeTransferred(func(ev systems.ChargeTransferred) {
		bs.log.Debug("charge transferred", zap.String("balloon", ev.Label), zap.Int("balloonCharge", ev.BalloonCharge))
	})
	s.OnBalloonReset(func(ev systems.BalloonReset) {
		if bs.grabbed != nil && bs.grabbed.Entry().Entity() == ev.Balloon {
			bs.grabbed = nil
		}
	})

	bs.sim = s
	bs.renderer = systems.NewRenderer(s.Physics(), &bs.cfg.Flags)
	bs.renderer.Register(s.ECS())
}

// saveSettings remembers the current toggles. Failures are logged by the
// store and otherwise ignored.
func (bs *BalloonScene) saveSettings() {
	if bs.store == nil {
		return
	}
	_ = bs.store.Save(systems.SettingsFromFlags(bs.cfg.Flags, bs.sim.TwoBalloons()))
}
