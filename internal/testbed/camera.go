package testbed

import "github.com/koteyur/impulse2d/pkg/vecmath"

// Camera maps y-up world coordinates onto the y-down screen.
type Camera struct {
	Center vecmath.Vector2
	Zoom   float64
}

func (c Camera) ToScreen(p vecmath.Vector2) vecmath.Vector2 {
	return vecmath.Vec(c.Center.X+p.X*c.Zoom, c.Center.Y-p.Y*c.Zoom)
}

func (c Camera) ToWorld(x, y float64) vecmath.Vector2 {
	return vecmath.Vec((x-c.Center.X)/c.Zoom, (c.Center.Y-y)/c.Zoom)
}
