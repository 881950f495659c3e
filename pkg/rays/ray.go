// Package rays casts line segments into a set of bodies.
package rays

import (
	"math"

	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// parallelTolerance is how close to zero the ray/edge cross product may get
// before the two are treated as parallel.
const parallelTolerance = 1e-12

// Ray is a segment from Origin along the unit Direction, Distance long.
type Ray struct {
	Origin    vecmath.Vector2
	Direction vecmath.Vector2
	Distance  float64
}

// Hit is the closest intersection of a ray with a body.
type Hit struct {
	Body     *dynamics.Body
	Point    vecmath.Vector2
	Distance float64
}

func New(origin, direction vecmath.Vector2, distance float64) Ray {
	return Ray{Origin: origin, Direction: direction.Normalized(), Distance: distance}
}

// FromAngle builds a ray pointing at radians, measured from the x axis.
func FromAngle(origin vecmath.Vector2, radians, distance float64) Ray {
	return Ray{Origin: origin, Direction: vecmath.FromAngle(radians), Distance: distance}
}

// End is the far end of the segment.
func (r Ray) End() vecmath.Vector2 {
	return r.Origin.Add(r.Direction.Scale(r.Distance))
}

// Cast reports the closest body the ray touches. A body containing the
// origin is never hit, whatever its shape.
func (r Ray) Cast(bodies []*dynamics.Body) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, b := range bodies {
		var (
			t  float64
			ok bool
		)
		switch b.Shape.Type {
		case geometry.Polygon:
			t, ok = r.castPolygon(b)
		case geometry.Circle:
			t, ok = r.castCircle(b)
		}
		if ok && t < best.Distance {
			best = Hit{Body: b, Point: r.Origin.Add(r.Direction.Scale(t)), Distance: t}
			found = true
		}
	}
	return best, found
}

func (r Ray) castPolygon(b *dynamics.Body) (float64, bool) {
	if collision.PointInside(b, r.Origin) {
		return 0, false
	}
	n := len(b.Shape.Vertices)
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		start := b.Shape.WorldVertex(b.Position, i)
		edge := b.Shape.WorldVertex(b.Position, (i+1)%n).Sub(start)

		denom := r.Direction.Cross(edge)
		if math.Abs(denom) < parallelTolerance {
			continue
		}
		toStart := start.Sub(r.Origin)
		t := toStart.Cross(edge) / denom
		u := toStart.Cross(r.Direction) / denom
		if t > 0 && t <= r.Distance && u >= 0 && u <= 1 && t < best {
			best = t
		}
	}
	return best, !math.IsInf(best, 1)
}

func (r Ray) castCircle(b *dynamics.Body) (float64, bool) {
	radius := b.Shape.Radius
	f := r.Origin.Sub(b.Position)

	half := f.Dot(r.Direction)
	c := f.LenSqr() - radius*radius
	disc := half*half - c
	if disc < 0 {
		return 0, false
	}
	t := -half - math.Sqrt(disc)
	if t < 0 || t > r.Distance {
		return 0, false
	}
	return t, true
}
