package geometry

import "github.com/koteyur/impulse2d/pkg/vecmath"

// convexHull gift-wraps points counter-clockwise starting at the leftmost
// point. Collinear points on an edge are dropped.
func convexHull(points []vecmath.Vector2) []vecmath.Vector2 {
	n := len(points)
	start := 0
	for i := 1; i < n; i++ {
		p := points[i]
		if p.X < points[start].X || (p.X == points[start].X && p.Y < points[start].Y) {
			start = i
		}
	}

	hull := make([]vecmath.Vector2, 0, n)
	p := start
	for {
		hull = append(hull, points[p])
		q := next(p, n)
		for r := 0; r < n; r++ {
			if points[r] == points[p] {
				continue
			}
			if points[q] == points[p] {
				q = r
				continue
			}
			c := points[q].Sub(points[p]).Cross(points[r].Sub(points[p]))
			if c < 0 || (c == 0 && points[p].DistanceSqr(points[r]) > points[p].DistanceSqr(points[q])) {
				q = r
			}
		}
		p = q
		if points[p] == points[start] || len(hull) > n {
			break
		}
	}
	return hull
}

func signedArea(vertices []vecmath.Vector2) float64 {
	area := 0.0
	for i := range vertices {
		area += vertices[i].Cross(vertices[next(i, len(vertices))])
	}
	return area / 2
}
