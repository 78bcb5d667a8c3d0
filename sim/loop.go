package sim

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Script drives a simulation from inside the loop. It runs after every step
// and returns true once it is finished.
type Script func(s *Simulation) (done bool)

// GameLoop steps a simulation at a fixed rate until its context ends or its
// script finishes.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	script   Script
	status   rate.Sometimes
	log      *zap.Logger
}

func NewGameLoop(sim *Simulation, tickRate int, statusInterval time.Duration) *GameLoop {
	if tickRate <= 0 {
		tickRate = sim.cfg.Loop.TickRate
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		status:   rate.Sometimes{First: 1, Interval: statusInterval},
		log:      sim.log.Named("loop"),
	}
}

// WithScript sets the script the loop runs after each step.
func (g *GameLoop) WithScript(s Script) *GameLoop {
	g.script = s
	return g
}

// Run steps in real time. It returns nil when the script finishes or the
// context is cancelled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Int("tickRate", g.tickRate))

	for {
		select {
		case <-ctx.Done():
			g.log.Info("game loop stopped", zap.Uint64("ticks", g.sim.Ticks()))
			return nil
		case <-ticker.C:
			if g.tick() {
				g.log.Info("script finished", g.sim.Snapshot().Field())
				return nil
			}
		}
	}
}

// RunTicks steps n times as fast as possible, stopping early if the script
// finishes or ctx ends. Returns the number of steps taken.
func (g *GameLoop) RunTicks(ctx context.Context, n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if g.tick() {
			return i + 1, nil
		}
	}
	return n, nil
}

func (g *GameLoop) tick() bool {
	g.sim.Step(1 / float64(g.tickRate))

	done := false
	if g.script != nil {
		done = g.script(g.sim)
	}
	g.status.Do(func() {
		g.log.Info("status", g.sim.Snapshot().Field())
	})
	return done
}
