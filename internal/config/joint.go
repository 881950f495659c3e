package config

import (
	"fmt"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/joints"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// JointConfig ties the body at index Body to the fixed world Point, or to
// the body at index To when that is set. Offsets are in each body's frame.
type JointConfig struct {
	Body     int             `yaml:"body"`
	To       *int            `yaml:"to,omitempty"`
	Point    vecmath.Vector2 `yaml:"point,omitempty"`
	Offset   vecmath.Vector2 `yaml:"offset,omitempty"`
	ToOffset vecmath.Vector2 `yaml:"to_offset,omitempty"`

	Spring joints.Spring `yaml:",inline"`
}

// Validate checks c against a scene holding bodies bodies.
func (c JointConfig) Validate(bodies int) error {
	if c.Body < 0 || c.Body >= bodies {
		return fmt.Errorf("%w: body %d out of range", ErrInvalidScene, c.Body)
	}
	if c.To != nil {
		if *c.To < 0 || *c.To >= bodies {
			return fmt.Errorf("%w: to %d out of range", ErrInvalidScene, *c.To)
		}
		if *c.To == c.Body {
			return fmt.Errorf("%w: joint links body %d to itself", ErrInvalidScene, c.Body)
		}
	}
	if err := c.Spring.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return nil
}

// Build creates the joint over bodies, indexed as in the scene file.
func (c JointConfig) Build(bodies []*dynamics.Body) (joints.Joint, error) {
	if err := c.Validate(len(bodies)); err != nil {
		return nil, err
	}
	if c.To == nil {
		return joints.NewToPoint(bodies[c.Body], c.Point, c.Offset, c.Spring)
	}
	return joints.NewToBody(bodies[c.Body], bodies[*c.To], c.Offset, c.ToOffset, c.Spring)
}
