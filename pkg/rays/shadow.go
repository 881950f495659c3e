package rays

import (
	"math"
	"sort"

	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// shadowNudge is how far, in radians, the extra rays either side of a
// silhouette point are turned so they slip past the corner.
const shadowNudge = 0.001

// AngledRay is one ray of a shadow projection together with what it hit.
type AngledRay struct {
	Ray   Ray
	Angle float64
	Hit   Hit
	OK    bool
}

// ShadowCaster projects rays from Origin at the silhouette of every body. The
// ray ends, sorted by angle, outline the region visible from Origin.
type ShadowCaster struct {
	Origin   vecmath.Vector2
	Distance float64
}

// Project casts rays at every polygon vertex and at both tangents of every
// circle, each with a neighbour nudged either way. The result is sorted by
// decreasing angle. It is empty when Origin lies inside a body.
func (s ShadowCaster) Project(bodies []*dynamics.Body) []AngledRay {
	var out []AngledRay
	for _, b := range bodies {
		if collision.PointInside(b, s.Origin) {
			return nil
		}
		switch b.Shape.Type {
		case geometry.Polygon:
			for i := range b.Shape.Vertices {
				out = s.project(out, b.Shape.WorldVertex(b.Position, i).Sub(s.Origin), bodies)
			}
		case geometry.Circle:
			d := b.Position.Sub(s.Origin)
			angle := math.Asin(b.Shape.Radius / d.Len())
			dir := d.Normalized()
			out = s.project(out, vecmath.Rotation(angle).MulVec(dir), bodies)
			out = s.project(out, vecmath.Rotation(-angle).MulVec(dir), bodies)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Angle > out[j].Angle
	})
	return out
}

func (s ShadowCaster) project(out []AngledRay, direction vecmath.Vector2, bodies []*dynamics.Body) []AngledRay {
	for _, nudge := range [...]float64{-shadowNudge, 0, shadowNudge} {
		dir := vecmath.Rotation(nudge).MulVec(direction)
		r := New(s.Origin, dir, s.Distance)
		hit, ok := r.Cast(bodies)
		out = append(out, AngledRay{
			Ray:   r,
			Angle: math.Atan2(dir.Y, dir.X),
			Hit:   hit,
			OK:    ok,
		})
	}
	return out
}
