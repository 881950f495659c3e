package geometry

import (
	"math"

	"github.com/koteyur/impulse2d/pkg/vecmath"
)

type AABB struct {
	Min vecmath.Vector2
	Max vecmath.Vector2
}

func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func (a AABB) Contains(p vecmath.Vector2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

func (a AABB) Center() vecmath.Vector2 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Bounds returns the world-space box around the shape placed at position.
func (s Shape) Bounds(position vecmath.Vector2) AABB {
	if s.Type == Circle || len(s.Vertices) == 0 {
		r := vecmath.Vec(s.Radius, s.Radius)
		return AABB{Min: position.Sub(r), Max: position.Add(r)}
	}
	box := AABB{
		Min: vecmath.Vec(math.Inf(1), math.Inf(1)),
		Max: vecmath.Vec(math.Inf(-1), math.Inf(-1)),
	}
	for _, v := range s.Vertices {
		p := s.Transform.MulVec(v)
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	box.Min.AddAssign(position)
	box.Max.AddAssign(position)
	return box
}
