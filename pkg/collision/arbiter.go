// Package collision implements narrow-phase detection between two bodies and
// the impulse response to the resulting contact.
//
// An Arbiter owns one body pair for one step. NarrowPhase rebuilds its
// Manifold from scratch; Solve consumes it. NarrowPhase must finish before
// Solve is called for the same pair, and neither is safe to run concurrently
// with another Arbiter touching the same bodies.
package collision

import (
	"errors"
	"math"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

var (
	ErrNilBody    = errors.New("arbiter needs two bodies")
	ErrStaticPair = errors.New("both bodies are immovable")
)

// Manifold describes how two bodies touch. Normal points from A towards B.
// ContactCount is 0 when the bodies do not collide; polygon pairs always
// report a single averaged contact.
type Manifold struct {
	Contacts     [2]vecmath.Vector2
	Normal       vecmath.Vector2
	ContactCount int
	Penetration  float64
	Restitution  float64
}

type Arbiter struct {
	A *dynamics.Body
	B *dynamics.Body

	Manifold

	settings *dynamics.Settings
}

// NewArbiter pairs a and b. A pair of immovable bodies has no effective mass
// and is rejected with ErrStaticPair. A nil settings uses the defaults.
func NewArbiter(a, b *dynamics.Body, settings *dynamics.Settings) (*Arbiter, error) {
	if a == nil || b == nil {
		return nil, ErrNilBody
	}
	if a.InvMass == 0 && b.InvMass == 0 {
		return nil, ErrStaticPair
	}
	if settings == nil {
		defaults := dynamics.DefaultSettings()
		settings = &defaults
	}
	return &Arbiter{A: a, B: b, settings: settings}, nil
}

// Colliding reports whether the last NarrowPhase found a contact.
func (arb *Arbiter) Colliding() bool {
	return arb.ContactCount > 0
}

// NarrowPhase recomputes the manifold for the current body state.
func (arb *Arbiter) NarrowPhase() {
	arb.Manifold = Manifold{
		Restitution: math.Min(arb.A.Restitution, arb.B.Restitution),
	}

	switch arb.A.Shape.Type {
	case geometry.Circle:
		switch arb.B.Shape.Type {
		case geometry.Circle:
			arb.circleVsCircle()
		case geometry.Polygon:
			arb.circleVsPolygon(arb.A, arb.B)
		}
	case geometry.Polygon:
		switch arb.B.Shape.Type {
		case geometry.Circle:
			arb.circleVsPolygon(arb.B, arb.A)
			if arb.ContactCount > 0 {
				arb.Normal.Negate()
			}
		case geometry.Polygon:
			arb.polygonVsPolygon()
		}
	}
}
