package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/balloons-static/sim"
	"github.com/automoto/balloons-static/systems"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		ticks       int
		realtime    bool
		demo        bool
		rubTicks    int
		flightTicks int
		twoBalloons bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the simulation and print the final state",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := sim.LoadScene(a.cfg.Scene)
			if err != nil {
				return err
			}
			s, err := sim.New(a.cfg, scene, a.log)
			if err != nil {
				return err
			}
			s.SetTwoBalloons(twoBalloons)
			s.OnChargeTransferred(func(ev systems.ChargeTransferred) {
				a.log.Debug("charge transferred",
					zap.String("balloon", ev.Label),
					zap.Int("balloonCharge", ev.BalloonCharge),
					zap.Int("sweaterCharge", ev.SweaterCharge),
				)
			})

			loop := sim.NewGameLoop(s, a.cfg.Loop.TickRate, a.cfg.Loop.StatusInterval)
			if demo {
				loop.WithScript(sim.RubAndRelease(rubTicks, flightTicks))
			}

			if realtime {
				err = runRealtime(cmd.Context(), loop, a.log)
			} else {
				if ticks <= 0 {
					return fmt.Errorf("--ticks must be positive without --realtime")
				}
				_, err = loop.RunTicks(cmd.Context(), ticks)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s.Snapshot())
		},
	}

	cmd.Flags().IntVar(&ticks, "ticks", 600, "steps to take without --realtime")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "step at the configured tick rate until interrupted")
	cmd.Flags().BoolVar(&demo, "demo", true, "rub the first balloon on the sweater and release it")
	cmd.Flags().IntVar(&rubTicks, "rub", 30, "steps spent rubbing in the demo")
	cmd.Flags().IntVar(&flightTicks, "flight", 240, "steps watched after the release in the demo")
	cmd.Flags().BoolVar(&twoBalloons, "two", false, "show the second balloon")
	return cmd
}

// runRealtime runs the loop next to a signal watcher. Whichever finishes
// first stops the other.
func runRealtime(parent context.Context, loop *sim.GameLoop, log *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return loop.Run(gctx)
	})
	g.Go(func() error {
		select {
		case sig := <-sigs:
			log.Info("shutting down", zap.Stringer("signal", sig))
			cancel()
		case <-gctx.Done():
		}
		return nil
	})
	return g.Wait()
}
