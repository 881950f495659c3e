package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/joints"
)

var (
	ErrNilJoint       = errors.New("nil joint")
	ErrUnknownJoint   = errors.New("joint is not in the world")
	ErrDuplicateJoint = errors.New("joint is already in the world")
)

// AddJoint registers j. Every body it acts on must already be in the world.
func (w *World) AddJoint(j joints.Joint) error {
	if j == nil {
		return ErrNilJoint
	}
	if slices.Contains(w.joints, j) {
		return ErrDuplicateJoint
	}
	for _, b := range j.Bodies() {
		if w.indexOf(b) < 0 {
			return fmt.Errorf("joint: %w", ErrUnknownBody)
		}
	}
	w.joints = append(w.joints, j)
	w.logger.Debug("joint added", log.Int("joints", len(w.joints)))
	return nil
}

func (w *World) RemoveJoint(j joints.Joint) error {
	i := slices.Index(w.joints, j)
	if i < 0 {
		return ErrUnknownJoint
	}
	w.joints = slices.Delete(w.joints, i, i+1)
	return nil
}

// Joints returns the joints in insertion order.
func (w *World) Joints() []joints.Joint {
	return append([]joints.Joint(nil), w.joints...)
}

// dropJoints forgets every joint acting on b.
func (w *World) dropJoints(b *dynamics.Body) {
	w.joints = slices.DeleteFunc(w.joints, func(j joints.Joint) bool {
		return slices.Contains(j.Bodies(), b)
	})
}

func (w *World) applyJointTension() {
	for _, j := range w.joints {
		j.ApplyTension()
	}
}
