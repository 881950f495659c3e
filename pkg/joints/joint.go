// Package joints ties bodies to fixed points or to each other with damped
// springs.
//
// A joint acts once per step: ApplyTension measures the current stretch and
// the rate at which it changes, and applies the resulting impulse along the
// joint at its attachment points.
package joints

import (
	"errors"
	"fmt"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

var (
	ErrNilBody       = errors.New("joint needs a body")
	ErrSameBody      = errors.New("joint ends on the body it starts from")
	ErrInvalidSpring = errors.New("invalid spring")
)

type Joint interface {
	// ApplyTension pushes the attached bodies by the current tension.
	ApplyTension()
	// Tension is positive when the joint pulls its ends together.
	Tension() float64
	// Endpoints are the two attachment points in world space.
	Endpoints() (vecmath.Vector2, vecmath.Vector2)
	// Bodies lists the bodies the joint acts on.
	Bodies() []*dynamics.Body
}

var (
	_ Joint = (*ToPoint)(nil)
	_ Joint = (*ToBody)(nil)
)

// Spring is the stretch response shared by every joint: Hooke's law on the
// extension past NaturalLength plus Damping times the extension rate. A
// joint that CanGoSlack exerts nothing while shorter than NaturalLength;
// otherwise it pushes its ends apart.
type Spring struct {
	NaturalLength float64 `yaml:"natural_length" json:"natural_length"`
	Stiffness     float64 `yaml:"stiffness" json:"stiffness"`
	Damping       float64 `yaml:"damping" json:"damping"`
	CanGoSlack    bool    `yaml:"can_go_slack" json:"can_go_slack"`
}

func (s Spring) Validate() error {
	switch {
	case s.NaturalLength < 0:
		return fmt.Errorf("%w: natural_length must not be negative", ErrInvalidSpring)
	case s.Stiffness < 0:
		return fmt.Errorf("%w: stiffness must not be negative", ErrInvalidSpring)
	case s.Damping < 0:
		return fmt.Errorf("%w: damping must not be negative", ErrInvalidSpring)
	}
	return nil
}

func (s Spring) tension(length, rate float64) float64 {
	if length < s.NaturalLength && s.CanGoSlack {
		return 0
	}
	return (length-s.NaturalLength)*s.Stiffness + s.Damping*rate
}

// attachment places offset, given in b's frame, in world space.
func attachment(b *dynamics.Body, offset vecmath.Vector2) vecmath.Vector2 {
	return b.Position.Add(b.Shape.Transform.MulVec(offset))
}

// span is the geometry of a joint at one instant: from and to are the two
// ends, dir the unit vector from one to the other, rate how fast the joint
// grows.
type span struct {
	from, to vecmath.Vector2
	dir      vecmath.Vector2
	length   float64
	rate     float64
}

func measure(from, to, fromVelocity, toVelocity vecmath.Vector2) span {
	s := span{from: from, to: to}
	axis := to.Sub(from)
	s.length = axis.Len()
	if s.length == 0 {
		return s
	}
	s.dir = axis.Scale(1 / s.length)
	s.rate = toVelocity.Sub(fromVelocity).Dot(s.dir)
	return s
}
