package collision

import (
	"math"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

func (arb *Arbiter) circleVsCircle() {
	a, b := arb.A, arb.B

	normal := b.Position.Sub(a.Position)
	distance := normal.Len()
	radius := a.Shape.Radius + b.Shape.Radius
	if distance >= radius {
		arb.ContactCount = 0
		return
	}

	arb.ContactCount = 1
	if distance == 0 {
		// coincident centres have no separating direction; pick up
		arb.Penetration = radius
		arb.Normal = vecmath.Up
		arb.Contacts[0] = a.Position
		return
	}
	arb.Penetration = radius - distance
	arb.Normal = normal.Scale(1 / distance)
	arb.Contacts[0] = a.Position.Add(arb.Normal.Scale(a.Shape.Radius))
}

// circleVsPolygon tests circle a against polygon b. The normal it produces
// points from a to b; the caller negates it when the pair was swapped.
func (arb *Arbiter) circleVsPolygon(a, b *dynamics.Body) {
	radius := a.Shape.Radius
	poly := &b.Shape

	// in the polygon's frame the test is circle vs axis aligned polygon
	center := poly.Transform.Transpose().MulVec(a.Position.Sub(b.Position))

	separation := -math.MaxFloat64
	face := 0
	for i, v := range poly.Vertices {
		s := poly.Normals[i].Dot(center.Sub(v))
		if s > radius {
			return
		}
		if s > separation {
			separation = s
			face = i
		}
	}

	v1 := poly.Vertices[face]
	v2 := poly.Vertices[nextIndex(face, len(poly.Vertices))]

	dot1 := center.Sub(v1).Dot(v2.Sub(v1))
	dot2 := center.Sub(v2).Dot(v1.Sub(v2))

	switch {
	case dot1 <= 0:
		arb.vertexContact(center, v1, face, radius, b)
	case dot2 <= 0:
		arb.vertexContact(center, v2, face, radius, b)
	default:
		arb.Penetration = radius - separation
		arb.Normal = poly.Transform.MulVec(poly.Normals[face]).Neg()
		arb.Contacts[0] = a.Position.Add(arb.Normal.Scale(radius))
		arb.ContactCount = 1
	}
}

// vertexContact handles a circle centre lying in the Voronoi region of
// vertex. Penetration is reported as the centre-to-vertex distance.
func (arb *Arbiter) vertexContact(center, vertex vecmath.Vector2, face int, radius float64, b *dynamics.Body) {
	poly := &b.Shape

	distance := center.Distance(vertex)
	if distance >= radius {
		return
	}

	arb.Penetration = distance
	if distance == 0 {
		arb.Normal = poly.Transform.MulVec(poly.Normals[face]).Neg()
	} else {
		arb.Normal = poly.Transform.MulVec(vertex.Sub(center).Scale(1 / distance))
	}
	arb.Contacts[0] = poly.Transform.MulVec(vertex).Add(b.Position)
	arb.ContactCount = 1
}

func nextIndex(i, n int) int {
	if i+1 < n {
		return i + 1
	}
	return 0
}
