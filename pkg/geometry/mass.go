package geometry

import (
	"math"

	"github.com/koteyur/impulse2d/pkg/vecmath"
)

type MassData struct {
	Mass    float64
	Inertia float64
	Area    float64
}

// ComputeMass returns the mass properties for density. Polygon vertices are
// shifted in place so that the centroid sits on the local origin; the
// returned offset is how far the centroid was from it.
func (s *Shape) ComputeMass(density float64) (MassData, vecmath.Vector2) {
	switch s.Type {
	case Circle:
		area := math.Pi * s.Radius * s.Radius
		mass := area * density
		return MassData{Mass: mass, Inertia: mass * s.Radius * s.Radius, Area: area}, vecmath.Zero
	case Polygon:
		return s.polygonMass(density)
	default:
		return MassData{}, vecmath.Zero
	}
}

func (s *Shape) polygonMass(density float64) (MassData, vecmath.Vector2) {
	const k = 1.0 / 3.0

	var (
		centroid vecmath.Vector2
		area     float64
		inertia  float64
	)
	for i := range s.Vertices {
		p1 := s.Vertices[i]
		p2 := s.Vertices[next(i, len(s.Vertices))]
		d := p1.Cross(p2)
		triangleArea := d / 2
		area += triangleArea

		centroid.AddAssign(p1.Add(p2).Scale(triangleArea * k))

		intx2 := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
		inty2 := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y
		inertia += 0.25 * k * d * (intx2 + inty2)
	}
	if area == 0 {
		return MassData{}, vecmath.Zero
	}
	centroid.ScaleAssign(1 / area)
	for i := range s.Vertices {
		s.Vertices[i].SubAssign(centroid)
	}

	// shift the second moment from the old origin to the centroid
	inertia -= area * centroid.LenSqr()

	return MassData{
		Mass:    density * area,
		Inertia: density * inertia,
		Area:    area,
	}, centroid
}
