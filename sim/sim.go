// Package sim wires the balloon model into a runnable simulation: the world,
// the physics system, the scene entities and the post-tick event dispatch.
package sim

import (
	"fmt"

	"github.com/automoto/balloons-static/components"
	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/logging"
	"github.com/automoto/balloons-static/shared/leveldata"
	"github.com/automoto/balloons-static/shared/playarea"
	"github.com/automoto/balloons-static/systems"
	"github.com/automoto/balloons-static/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// Simulation owns one scene. It is not safe for concurrent use; drive it
// from a single goroutine.
type Simulation struct {
	ID uuid.UUID

	cfg     *config.Config
	scene   *leveldata.Scene
	ecs     *ecs.ECS
	phys    *systems.Physics
	entries factory.SceneEntries
	log     *zap.Logger
}

// New builds a simulation for scene. A nil scene uses the built-in layout.
func New(cfg *config.Config, scene *leveldata.Scene, logger *zap.Logger) (*Simulation, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if scene == nil {
		scene = leveldata.Default()
	}
	if len(scene.Spawns) == 0 {
		return nil, fmt.Errorf("scene has no balloons: %w", leveldata.ErrMissingObject)
	}

	id := uuid.New()
	log := logging.OrNop(logger).With(zap.Stringer("session", id))

	e := ecs.NewECS(donburi.NewWorld())
	entries := factory.CreateScene(e, scene, cfg.Flags.WallVisible, cfg.Physics.VelocitySamples)
	phys := systems.NewPhysics(cfg, playarea.New(scene), log)
	e.AddSystem(phys.UpdateBalloons)

	s := &Simulation{
		ID:      id,
		cfg:     cfg,
		scene:   scene,
		ecs:     e,
		phys:    phys,
		entries: entries,
		log:     log.Named("sim"),
	}
	for _, b := range entries.Balloons {
		phys.Refresh(e.World, b)
	}
	// nobody is listening yet
	events.ProcessAllEvents(e.World)

	s.log.Info("simulation created",
		zap.Int("balloons", len(entries.Balloons)),
		zap.Int("sweaterCharges", len(scene.SweaterCharges)),
		zap.Bool("wallVisible", cfg.Flags.WallVisible),
	)
	return s, nil
}

func (s *Simulation) World() donburi.World       { return s.ecs.World }
func (s *Simulation) ECS() *ecs.ECS              { return s.ecs }
func (s *Simulation) Physics() *systems.Physics  { return s.phys }
func (s *Simulation) Area() *playarea.Map        { return s.phys.Area() }
func (s *Simulation) Config() *config.Config     { return s.cfg }
func (s *Simulation) Scene() *leveldata.Scene    { return s.scene }
func (s *Simulation) Logger() *zap.Logger        { return s.log }
func (s *Simulation) Sweater() *donburi.Entry    { return s.entries.Sweater }

// Entries exposes the scene entities.
func (s *Simulation) Entries() factory.SceneEntries {
	return s.entries
}

// Step advances the model by dtSeconds and then delivers the events queued
// during the step.
func (s *Simulation) Step(dtSeconds float64) {
	clock := components.Clock.Get(s.entries.Clock)
	clock.Dt = dtSeconds
	s.ecs.Update()
	events.ProcessAllEvents(s.ecs.World)
}

// Ticks is the number of steps taken so far.
func (s *Simulation) Ticks() uint64 {
	return components.Clock.Get(s.entries.Clock).Ticks
}

// Reset puts every balloon and the sweater back to their initial state,
// visibility included.
func (s *Simulation) Reset() {
	s.reset(false)
	s.log.Info("simulation reset")
}

// ResetBalloons is Reset without touching which balloons are shown.
func (s *Simulation) ResetBalloons() {
	s.reset(true)
	s.log.Debug("balloons reset")
}

func (s *Simulation) reset(keepVisibility bool) {
	w := s.ecs.World
	components.Sweater.Get(s.entries.Sweater).Reset()
	for _, b := range s.entries.Balloons {
		s.phys.Reset(w, b, keepVisibility)
	}
	if !keepVisibility {
		s.phys.SetWallVisible(w, s.cfg.Flags.WallVisible)
	}
	events.ProcessAllEvents(w)
}

// SetWallVisible shows or hides the wall.
func (s *Simulation) SetWallVisible(visible bool) {
	s.phys.SetWallVisible(s.ecs.World, visible)
	events.ProcessAllEvents(s.ecs.World)
}

func (s *Simulation) WallVisible() bool {
	return systems.WallVisible(s.ecs.World)
}

// SetTwoBalloons shows or hides every balloon after the first.
func (s *Simulation) SetTwoBalloons(show bool) {
	for _, entry := range s.entries.Balloons[1:] {
		b := components.Balloon.Get(entry)
		if b.Visible == show {
			continue
		}
		if !show {
			s.phys.Release(s.ecs.World, entry)
		}
		b.Visible = show
		s.phys.Refresh(s.ecs.World, entry)
	}
	events.ProcessAllEvents(s.ecs.World)
}

// TwoBalloons reports whether the second balloon is shown.
func (s *Simulation) TwoBalloons() bool {
	if len(s.entries.Balloons) < 2 {
		return false
	}
	return components.Balloon.Get(s.entries.Balloons[1]).Visible
}

// SweaterCharge is the sweater's net positive charge.
func (s *Simulation) SweaterCharge() int {
	return components.Sweater.Get(s.entries.Sweater).NetCharge()
}
