package world

import (
	"errors"
	"fmt"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// fragmentScale shrinks every fragment around its own centroid so that
// neighbours do not start out overlapping.
const fragmentScale = 0.95

// Shatter breaks polygon b into one triangle per edge, all meeting at point,
// and pushes each fragment away from point with the given force. Nothing
// happens when b is a circle or point lies outside it. The fragments replace
// b in the world and are returned.
func (w *World) Shatter(b *dynamics.Body, point vecmath.Vector2, force float64) ([]*dynamics.Body, error) {
	if w.indexOf(b) < 0 {
		return nil, ErrUnknownBody
	}
	if b.Shape.Type != geometry.Polygon || !collision.PointInside(b, point) {
		return nil, nil
	}

	n := len(b.Shape.Vertices)
	fragments := make([]*dynamics.Body, 0, n)
	for i := 0; i < n; i++ {
		corners := [3]vecmath.Vector2{
			b.Shape.WorldVertex(b.Position, i),
			b.Shape.WorldVertex(b.Position, (i+1)%n),
			point,
		}
		centroid := corners[0].Add(corners[1]).Add(corners[2]).Scale(1.0 / 3)

		local := make([]vecmath.Vector2, len(corners))
		for k, c := range corners {
			local[k] = c.Sub(centroid).Scale(fragmentScale)
		}
		shape, err := geometry.NewPolygon(local...)
		if errors.Is(err, geometry.ErrDegeneratePolygon) {
			// point sits on this edge
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("shatter: %w", err)
		}

		fragment := dynamics.NewBody(shape, centroid, b.Density)
		fragment.Velocity = b.Velocity
		fragment.AngularVelocity = b.AngularVelocity
		fragment.Restitution = b.Restitution
		fragment.StaticFriction = b.StaticFriction
		fragment.DynamicFriction = b.DynamicFriction
		fragment.LinearDamping = b.LinearDamping
		fragment.AngularDamping = b.AngularDamping
		fragment.AffectedByGravity = b.AffectedByGravity

		edgeMiddle := corners[0].Add(corners[1]).Scale(0.5)
		fragment.ApplyForce(edgeMiddle.Sub(point).Normalized().Scale(force))
		fragments = append(fragments, fragment)
	}

	if err := w.RemoveBody(b); err != nil {
		return nil, err
	}
	for _, f := range fragments {
		if err := w.AddBody(f); err != nil {
			return nil, err
		}
	}
	w.logger.Debug("body shattered", log.Stringer("id", b.ID), log.Int("fragments", len(fragments)))
	return fragments, nil
}
