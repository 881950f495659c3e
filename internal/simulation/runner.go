// Package simulation drives a world in real time and publishes snapshots.
package simulation

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/koteyur/impulse2d/internal/config"
	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/internal/snapshot"
	"github.com/koteyur/impulse2d/pkg/world"
)

type Broadcaster interface {
	Broadcast(msg snapshot.Message) error
}

type Runner struct {
	world          *world.World
	out            Broadcaster
	serve          func(ctx context.Context) error
	logger         log.Log
	broadcastEvery uint64

	mu            sync.Mutex
	lastBroadcast uint64
}

func New(scene *config.Scene, w *world.World, hub *snapshot.Hub, logger log.Log) *Runner {
	addr := scene.Server.Addr
	return &Runner{
		world: w,
		out:   hub,
		serve: func(ctx context.Context) error {
			return snapshot.Serve(ctx, addr, hub, logger)
		},
		logger:         logger.With(log.String("component", "simulation")),
		broadcastEvery: uint64(scene.Server.BroadcastEvery),
	}
}

// Run serves snapshots and steps the world until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.serve(ctx)
	})
	g.Go(func() error {
		return r.loop(ctx)
	})
	return g.Wait()
}

func (r *Runner) loop(ctx context.Context) error {
	period := time.Duration(r.world.Settings().TimeStep() * float64(time.Second))
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	r.logger.Info("simulation started",
		log.Int("bodies", len(r.world.Bodies())),
		log.Duration("step", period),
	)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation stopped", log.Uint64("ticks", r.world.Ticks()))
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			if err := r.Tick(ctx, elapsed); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

// Tick advances the world by elapsed seconds of wall time and broadcasts a
// snapshot once at least broadcastEvery steps have run since the last one.
func (r *Runner) Tick(ctx context.Context, elapsed float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.world.Advance(ctx, elapsed); err != nil {
		return err
	}
	ticks := r.world.Ticks()
	if ticks-r.lastBroadcast < r.broadcastEvery {
		return nil
	}
	r.lastBroadcast = ticks

	msg := snapshot.Capture(ticks, r.world.Bodies(), r.world.Arbiters(), r.world.Joints())
	if err := r.out.Broadcast(msg); err != nil {
		r.logger.Error("broadcast failed", log.Error(err))
	}
	return nil
}
