package world

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/collision"
)

// Step advances the world by dt. Every narrow phase runs before any impulse
// is applied.
func (w *World) Step(ctx context.Context, dt float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dt <= 0 || math.IsNaN(dt) {
		return fmt.Errorf("%w: %v", ErrTimeStep, dt)
	}

	active := w.broadPhase()
	if err := w.narrowPhase(ctx, active); err != nil {
		return err
	}

	w.contacts = w.contacts[:0]
	for _, arb := range active {
		if arb.Colliding() {
			w.contacts = append(w.contacts, arb)
		}
	}

	w.integrateForces(dt)
	w.applyJointTension()
	for i := 0; i < w.settings.Iterations; i++ {
		for _, arb := range w.contacts {
			arb.Solve()
		}
	}
	w.integrateVelocities(dt)
	w.correctPositions()

	for _, b := range w.bodies {
		b.ClearForces()
	}

	w.ticks++
	w.logger.Debug("step",
		log.Uint64("tick", w.ticks),
		log.Int("bodies", len(w.bodies)),
		log.Int("pairs", len(active)),
		log.Int("contacts", len(w.contacts)),
		log.Int("joints", len(w.joints)),
	)
	return nil
}

// Advance accumulates elapsed seconds and runs as many fixed steps of
// Settings.TimeStep as fit, at most maxSubSteps. Leftover time carries over
// to the next call. It returns the number of steps run.
func (w *World) Advance(ctx context.Context, elapsed float64) (int, error) {
	dt := w.settings.TimeStep()
	w.accumulator += elapsed

	steps := 0
	for w.accumulator >= dt {
		if steps == maxSubSteps {
			w.logger.Warn("falling behind, dropping time", log.Float64("dropped", w.accumulator))
			w.accumulator = 0
			break
		}
		if err := w.Step(ctx, dt); err != nil {
			return steps, err
		}
		w.accumulator -= dt
		steps++
	}
	return steps, nil
}

// broadPhase refreshes bounding boxes, finds overlapping pairs and returns
// their arbiters in pair order. Arbiters of pairs that stopped overlapping
// are dropped.
func (w *World) broadPhase() []*collision.Arbiter {
	for _, b := range w.bodies {
		b.UpdateAABB()
	}

	pairs := candidatePairs(w.bodies, w.settings.BroadPhaseCellSize)
	active := make([]*collision.Arbiter, 0, len(pairs))
	live := make(map[*collision.Arbiter]struct{}, len(pairs))

	for _, p := range pairs {
		a, b := w.bodies[p.i], w.bodies[p.j]

		arb := w.arbiters.find(a, b)
		if arb == nil {
			var err error
			arb, err = collision.NewArbiter(a, b, &w.settings)
			if err != nil {
				w.logger.Debug("pair skipped", log.Error(err))
				continue
			}
			w.arbiters.put(arb)
		}
		live[arb] = struct{}{}
		active = append(active, arb)
	}

	w.arbiters.retain(func(arb *collision.Arbiter) bool {
		_, ok := live[arb]
		return ok
	})
	return active
}

func (w *World) narrowPhase(ctx context.Context, active []*collision.Arbiter) error {
	if !w.settings.ParallelNarrowPhase || len(active) < 2 {
		for _, arb := range active {
			arb.NarrowPhase()
		}
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(active) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(active); start += chunk {
		part := active[start:min(start+chunk, len(active))]
		g.Go(func() error {
			for _, arb := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				arb.NarrowPhase()
			}
			return nil
		})
	}
	return g.Wait()
}

func (w *World) integrateForces(dt float64) {
	for _, b := range w.bodies {
		if b.IsStatic() {
			continue
		}
		accel := b.Force.Scale(b.InvMass)
		if b.AffectedByGravity {
			accel.AddAssign(w.Gravity)
		}
		b.Velocity.AddAssign(accel.Scale(dt))
		b.AngularVelocity += b.Torque * b.InvInertia * dt

		if b.LinearDamping != 0 {
			b.Velocity.ScaleAssign(1 / (1 + dt*b.LinearDamping))
		}
		if b.AngularDamping != 0 {
			b.AngularVelocity /= 1 + dt*b.AngularDamping
		}
	}
}

func (w *World) integrateVelocities(dt float64) {
	for _, b := range w.bodies {
		if b.IsStatic() {
			continue
		}
		b.Position.AddAssign(b.Velocity.Scale(dt))
		b.SetOrient(b.Orient + b.AngularVelocity*dt)
	}
}

// correctPositions pushes overlapping bodies apart along the contact normal
// by a fraction of the penetration beyond the allowance.
func (w *World) correctPositions() {
	allowance := w.settings.PenetrationAllowance
	percent := w.settings.PenetrationCorrection

	for _, arb := range w.contacts {
		a, b := arb.A, arb.B
		invMassSum := a.InvMass + b.InvMass
		if invMassSum == 0 {
			continue
		}
		depth := math.Max(arb.Penetration-allowance, 0) / invMassSum
		correction := arb.Normal.Scale(depth * percent)

		a.Position.SubAssign(correction.Scale(a.InvMass))
		b.Position.AddAssign(correction.Scale(b.InvMass))
	}
}
