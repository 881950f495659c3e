package collision

import (
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// PointInside reports whether the world point p lies within body b.
func PointInside(b *dynamics.Body, p vecmath.Vector2) bool {
	switch b.Shape.Type {
	case geometry.Circle:
		return p.DistanceSqr(b.Position) <= b.Shape.Radius*b.Shape.Radius
	case geometry.Polygon:
		local := b.Shape.Transform.Transpose().MulVec(p.Sub(b.Position))
		for i, v := range b.Shape.Vertices {
			if b.Shape.Normals[i].Dot(local.Sub(v)) > 0 {
				return false
			}
		}
		return true
	default:
		return false
	}
}
