// Package world owns a set of bodies and advances them in fixed steps: broad
// phase, narrow phase, impulse resolution, integration and positional
// correction.
package world

import (
	"errors"
	"fmt"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/joints"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

var (
	ErrUnknownBody   = errors.New("body is not in the world")
	ErrDuplicateBody = errors.New("body is already in the world")
	ErrNilBody       = errors.New("nil body")
	ErrTimeStep      = errors.New("time step must be positive")
)

// maxSubSteps bounds how many fixed steps one Advance call may run.
const maxSubSteps = 8

// World is not safe for concurrent use.
type World struct {
	Gravity vecmath.Vector2

	settings dynamics.Settings
	logger   log.Log

	bodies   []*dynamics.Body
	arbiters arbiterTable
	contacts []*collision.Arbiter
	joints   []joints.Joint

	accumulator float64
	ticks       uint64
}

func New(gravity vecmath.Vector2, settings dynamics.Settings, logger log.Log) (*World, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &World{
		Gravity:  gravity,
		settings: settings,
		logger:   logger.With(log.String("component", "world")),
		arbiters: make(arbiterTable),
	}, nil
}

func (w *World) Settings() dynamics.Settings {
	return w.settings
}

// Ticks is the number of steps run so far.
func (w *World) Ticks() uint64 {
	return w.ticks
}

func (w *World) AddBody(b *dynamics.Body) error {
	if b == nil {
		return ErrNilBody
	}
	if w.indexOf(b) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateBody, b.ID)
	}
	b.UpdateAABB()
	w.bodies = append(w.bodies, b)
	w.logger.Debug("body added",
		log.Stringer("id", b.ID),
		log.Stringer("shape", b.Shape.Type),
		log.Bool("static", b.IsStatic()),
	)
	return nil
}

// RemoveBody drops b together with every arbiter and joint that refers to
// it.
func (w *World) RemoveBody(b *dynamics.Body) error {
	i := w.indexOf(b)
	if i < 0 {
		if b == nil {
			return ErrUnknownBody
		}
		return fmt.Errorf("%w: %s", ErrUnknownBody, b.ID)
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)

	w.arbiters.retain(func(arb *collision.Arbiter) bool {
		return arb.A != b && arb.B != b
	})
	contacts := w.contacts[:0]
	for _, arb := range w.contacts {
		if arb.A != b && arb.B != b {
			contacts = append(contacts, arb)
		}
	}
	w.contacts = contacts
	w.dropJoints(b)

	w.logger.Debug("body removed", log.Stringer("id", b.ID))
	return nil
}

// Bodies returns the bodies in insertion order. The slice is a copy; the
// bodies are not.
func (w *World) Bodies() []*dynamics.Body {
	return append([]*dynamics.Body(nil), w.bodies...)
}

// Arbiters returns the pairs that were in contact during the last step, in
// pair order.
func (w *World) Arbiters() []*collision.Arbiter {
	return append([]*collision.Arbiter(nil), w.contacts...)
}

func (w *World) Clear() {
	w.bodies = nil
	w.contacts = nil
	w.joints = nil
	w.arbiters = make(arbiterTable)
	w.accumulator = 0
}

func (w *World) indexOf(b *dynamics.Body) int {
	for i, body := range w.bodies {
		if body == b {
			return i
		}
	}
	return -1
}
