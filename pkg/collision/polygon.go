package collision

import (
	"math"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// axisData is the best separating axis candidate of one polygon against
// another. A non-negative Penetration means the polygons are apart.
type axisData struct {
	Penetration        float64
	ReferenceFaceIndex int
}

func (arb *Arbiter) polygonVsPolygon() {
	a, b := arb.A, arb.B

	axisA := findAxisOfMinPenetration(a, b)
	if axisA.Penetration >= 0 {
		return
	}
	axisB := findAxisOfMinPenetration(b, a)
	if axisB.Penetration >= 0 {
		return
	}

	ref, inc := a, b
	refIndex := axisA.ReferenceFaceIndex
	flip := false
	if !arb.biasGreaterThan(axisA.Penetration, axisB.Penetration) {
		ref, inc = b, a
		refIndex = axisB.ReferenceFaceIndex
		flip = true
	}

	incident := findIncidentFace(ref, inc, refIndex)

	refPoly := &ref.Shape
	v1 := refPoly.Transform.MulVec(refPoly.Vertices[refIndex]).Add(ref.Position)
	v2 := refPoly.Transform.MulVec(refPoly.Vertices[nextIndex(refIndex, len(refPoly.Vertices))]).Add(ref.Position)

	tangent := v2.Sub(v1).Normalized()
	negSide := -tangent.Dot(v1)
	posSide := tangent.Dot(v2)

	if clip(tangent.Neg(), negSide, &incident) < 2 {
		return
	}
	if clip(tangent, posSide, &incident) < 2 {
		return
	}

	refNormal := vecmath.Vec(tangent.Y, -tangent.X)
	refC := refNormal.Dot(v1)

	var (
		found [2]vecmath.Vector2
		count int
		total float64
	)
	for _, p := range incident {
		separation := refNormal.Dot(p) - refC
		if separation <= arb.settings.Epsilon {
			found[count] = p
			total += -separation
			count++
		}
	}

	switch count {
	case 0:
		return
	case 1:
		arb.Contacts[0] = found[0]
		arb.Penetration = total
	default:
		arb.Contacts[0] = found[0].Add(found[1]).Scale(0.5)
		arb.Penetration = total / 2
	}
	arb.Penetration = math.Max(arb.Penetration, 0)
	arb.ContactCount = 1

	arb.Normal = refNormal
	if flip {
		arb.Normal.Negate()
	}
}

// findAxisOfMinPenetration looks for the face of a with the largest signed
// distance to b. Everything is evaluated in b's local frame.
func findAxisOfMinPenetration(a, b *dynamics.Body) axisData {
	pa, pb := &a.Shape, &b.Shape
	bT := pb.Transform.Transpose()
	offset := a.Position.Sub(b.Position)

	best := axisData{Penetration: -math.MaxFloat64}
	for i, n := range pa.Normals {
		normal := bT.MulVec(pa.Transform.MulVec(n))
		support := supportPoint(pb, normal.Neg())
		vertex := bT.MulVec(pa.Transform.MulVec(pa.Vertices[i]).Add(offset))

		d := normal.Dot(support.Sub(vertex))
		if d > best.Penetration {
			best = axisData{Penetration: d, ReferenceFaceIndex: i}
		}
	}
	return best
}

// supportPoint returns the local vertex of poly furthest along dir.
func supportPoint(poly *geometry.Shape, dir vecmath.Vector2) vecmath.Vector2 {
	bestProjection := -math.MaxFloat64
	var best vecmath.Vector2
	for _, v := range poly.Vertices {
		if p := v.Dot(dir); p > bestProjection {
			bestProjection = p
			best = v
		}
	}
	return best
}

// findIncidentFace returns, in world space, the face of inc whose normal is
// most anti-parallel to the reference face normal.
func findIncidentFace(ref, inc *dynamics.Body, refIndex int) [2]vecmath.Vector2 {
	refPoly, incPoly := &ref.Shape, &inc.Shape

	refNormal := refPoly.Transform.MulVec(refPoly.Normals[refIndex])
	refNormal = incPoly.Transform.Transpose().MulVec(refNormal)

	incidentIndex := 0
	minDot := math.MaxFloat64
	for i, n := range incPoly.Normals {
		if dot := refNormal.Dot(n); dot < minDot {
			minDot = dot
			incidentIndex = i
		}
	}

	return [2]vecmath.Vector2{
		incPoly.Transform.MulVec(incPoly.Vertices[incidentIndex]).Add(inc.Position),
		incPoly.Transform.MulVec(incPoly.Vertices[nextIndex(incidentIndex, len(incPoly.Vertices))]).Add(inc.Position),
	}
}

// clip keeps the part of face on the inner side of the plane n·p = offset
// and returns how many points survived.
func clip(n vecmath.Vector2, offset float64, face *[2]vecmath.Vector2) int {
	sp := 0
	out := *face

	d0 := n.Dot(face[0]) - offset
	d1 := n.Dot(face[1]) - offset

	if d0 <= 0 {
		out[sp] = face[0]
		sp++
	}
	if d1 <= 0 {
		out[sp] = face[1]
		sp++
	}
	if d0*d1 < 0 {
		alpha := d0 / (d0 - d1)
		out[sp] = face[0].Add(face[1].Sub(face[0]).Scale(alpha))
		sp++
	}

	*face = out
	return sp
}

// biasGreaterThan compares two axis penetrations, leaning towards the first
// so the reference face does not flip between frames on near ties.
func (arb *Arbiter) biasGreaterThan(a, b float64) bool {
	return a >= b*arb.settings.BiasRelative+a*arb.settings.BiasAbsolute
}
