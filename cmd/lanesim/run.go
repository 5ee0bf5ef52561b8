package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/lanesim/audio"
	"github.com/lixenwraith/lanesim/config"
	"github.com/lixenwraith/lanesim/core"
	"github.com/lixenwraith/lanesim/engine"
	"github.com/lixenwraith/lanesim/feed"
	"github.com/lixenwraith/lanesim/render"
	"github.com/lixenwraith/lanesim/status"
)

// sink receives a snapshot after setup and after every step
type sink func(engine.Snapshot)

// run builds the simulation described by cfg, drives it to completion and prints the report to out
func run(ctx context.Context, cfg *config.File, logger *log.Logger, out io.Writer) error {
	seed := cfg.Run.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ec, err := cfg.Engine()
	if err != nil {
		return err
	}

	registry := status.NewRegistry()
	simOpts := []engine.Option{engine.WithLogger(logger), engine.WithRegistry(registry)}

	if cfg.View.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		} else {
			defer sm.Cleanup()
			simOpts = append(simOpts, engine.WithListener(audio.NewCueListener(sm)))
		}
	}

	sim, err := engine.New(ec, engine.NewSource(seed), simOpts...)
	if err != nil {
		return fmt.Errorf("failed to build simulation: %w", err)
	}
	logger.Info("run starting", "seed", seed, "layout", ec.Layout, "steps", cfg.Run.Steps)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	var sinks []sink

	if cfg.Feed.Addr != "" {
		hub := feed.NewHub(registry, logger)
		g.Go(func() error {
			return hub.Serve(runCtx, cfg.Feed.Addr)
		})
		sinks = append(sinks, func(snap engine.Snapshot) {
			if err := hub.Publish(snap); err != nil && !errors.Is(err, feed.ErrHubClosed) {
				logger.Warn("feed publish failed", "err", err)
			}
		})
	}

	if cfg.View.Enabled {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to initialize screen: %w", err)
		}
		core.SetCrashReset(screen.Fini)
		defer func() {
			screen.Fini()
			core.SetCrashReset(nil)
		}()

		view := render.NewGridView(screen)
		core.Go(func() { render.WatchQuit(screen, cancel) })
		sinks = append(sinks, view.Draw)
	}

	interval := time.Duration(0)
	if len(sinks) > 0 {
		interval = cfg.Run.Interval.Duration
	}

	g.Go(func() error {
		// Finishing the run stops the feed server too
		defer cancel()
		drive(runCtx, sim, cfg.Run.Steps, interval, sinks)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("run finished", "steps", sim.StepCount(), "halted", sim.Halted(), "total_movements", sim.TotalMovements())
	return report(out, sim, seed)
}

// drive steps sim until it halts, the budget is spent or ctx is done
// With no sinks the loop runs unpaced through Simulation.Run
func drive(ctx context.Context, sim *engine.Simulation, budget int, interval time.Duration, sinks []sink) {
	if len(sinks) == 0 {
		sim.Run(ctx, budget)
		return
	}

	publish := func() {
		snap := sim.Snapshot()
		for _, s := range sinks {
			s(snap)
		}
	}
	publish()

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for sim.Running() && (budget <= 0 || sim.StepCount() < budget) {
		if tick != nil {
			select {
			case <-ctx.Done():
				return
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return
		}
		sim.Step()
		publish()
	}
}

// report prints the per-step movement series and the final total
func report(out io.Writer, sim *engine.Simulation, seed uint64) error {
	state := "running"
	if sim.Halted() {
		state = "halted"
	}
	if _, err := fmt.Fprintf(out, "seed %d  steps %d  %s\n", seed, sim.StepCount(), state); err != nil {
		return err
	}

	fmt.Fprintf(out, "%6s %16s %9s\n", "step", "total_movements", "collided")
	for _, p := range sim.Series() {
		fmt.Fprintf(out, "%6d %16d %9d\n", p.Step, p.TotalMovements, p.Collided)
	}

	_, err := fmt.Fprintf(out, "total movements: %d\n", sim.TotalMovements())
	return err
}
