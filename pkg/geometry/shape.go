// Package geometry describes the collision shapes a body can carry.
//
// Shape is a tagged variant: Type says whether the circle fields (Radius) or
// the polygon fields (Vertices, Normals) are meaningful. Polygon data is kept
// in local space with counter-clockwise winding; Normals[i] is the outward
// unit normal of the edge Vertices[i] -> Vertices[(i+1)%n].
package geometry

import (
	"errors"
	"math"

	"github.com/koteyur/impulse2d/pkg/vecmath"
)

const CircleOutlineVertices = 24

var (
	ErrTooFewVertices     = errors.New("polygon needs at least 3 vertices")
	ErrDegeneratePolygon  = errors.New("polygon has no area")
	ErrNonPositiveRadius  = errors.New("radius must be positive")
	ErrNonPositiveExtents = errors.New("extents must be positive")
)

type ShapeType int

const (
	Circle ShapeType = iota
	Polygon
)

func (t ShapeType) String() string {
	switch t {
	case Circle:
		return "circle"
	case Polygon:
		return "polygon"
	default:
		return "unknown"
	}
}

type Shape struct {
	Type      ShapeType
	Radius    float64
	Vertices  []vecmath.Vector2
	Normals   []vecmath.Vector2
	Transform vecmath.Mat2
}

func NewCircle(radius float64) (Shape, error) {
	if radius <= 0 {
		return Shape{}, ErrNonPositiveRadius
	}
	return Shape{
		Type:      Circle,
		Radius:    radius,
		Transform: vecmath.Identity,
	}, nil
}

// NewBox builds an axis aligned rectangle from its half extents.
func NewBox(halfWidth, halfHeight float64) (Shape, error) {
	if halfWidth <= 0 || halfHeight <= 0 {
		return Shape{}, ErrNonPositiveExtents
	}
	return Shape{
		Type: Polygon,
		Vertices: []vecmath.Vector2{
			{X: -halfWidth, Y: -halfHeight},
			{X: halfWidth, Y: -halfHeight},
			{X: halfWidth, Y: halfHeight},
			{X: -halfWidth, Y: halfHeight},
		},
		Normals: []vecmath.Vector2{
			vecmath.Down,
			vecmath.Right,
			vecmath.Up,
			vecmath.Left,
		},
		Transform: vecmath.Identity,
	}, nil
}

// NewRegularPolygon places sides vertices on a circle of the given radius.
func NewRegularPolygon(radius float64, sides int) (Shape, error) {
	if sides < 3 {
		return Shape{}, ErrTooFewVertices
	}
	if radius <= 0 {
		return Shape{}, ErrNonPositiveRadius
	}
	vertices := make([]vecmath.Vector2, sides)
	for i := range vertices {
		angle := 2 * math.Pi / float64(sides) * (float64(i) + 0.75)
		vertices[i] = vecmath.Vec(radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return Shape{
		Type:      Polygon,
		Vertices:  vertices,
		Normals:   faceNormals(vertices),
		Transform: vecmath.Identity,
	}, nil
}

// NewPolygon wraps points in their convex hull. Input order does not matter.
func NewPolygon(points ...vecmath.Vector2) (Shape, error) {
	if len(points) < 3 {
		return Shape{}, ErrTooFewVertices
	}
	hull := convexHull(points)
	if len(hull) < 3 {
		return Shape{}, ErrDegeneratePolygon
	}
	if signedArea(hull) <= 0 {
		return Shape{}, ErrDegeneratePolygon
	}
	return Shape{
		Type:      Polygon,
		Vertices:  hull,
		Normals:   faceNormals(hull),
		Transform: vecmath.Identity,
	}, nil
}

// Clone deep-copies the vertex data so the copy can be recentred or
// rotated independently.
func (s Shape) Clone() Shape {
	c := s
	if s.Vertices != nil {
		c.Vertices = append([]vecmath.Vector2(nil), s.Vertices...)
		c.Normals = append([]vecmath.Vector2(nil), s.Normals...)
	}
	return c
}

func (s Shape) VertexCount() int {
	if s.Type == Circle {
		return CircleOutlineVertices
	}
	return len(s.Vertices)
}

// WorldVertex returns vertex i of the outline placed at position. Circles are
// approximated with CircleOutlineVertices points.
func (s Shape) WorldVertex(position vecmath.Vector2, i int) vecmath.Vector2 {
	switch s.Type {
	case Circle:
		angle := 2 * math.Pi / CircleOutlineVertices * float64(i)
		return position.Add(vecmath.FromAngle(angle).Scale(s.Radius))
	case Polygon:
		return s.Transform.MulVec(s.Vertices[i]).Add(position)
	default:
		return position
	}
}

func faceNormals(vertices []vecmath.Vector2) []vecmath.Vector2 {
	normals := make([]vecmath.Vector2, len(vertices))
	for i := range vertices {
		face := vertices[next(i, len(vertices))].Sub(vertices[i])
		normals[i] = vecmath.Vec(face.Y, -face.X).Normalized()
	}
	return normals
}

func next(i, n int) int {
	if i+1 < n {
		return i + 1
	}
	return 0
}
