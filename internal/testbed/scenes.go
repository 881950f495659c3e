// Package testbed builds the interactive demo scenes.
package testbed

import (
	"math"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/joints"
	"github.com/koteyur/impulse2d/pkg/vecmath"
	"github.com/koteyur/impulse2d/pkg/world"
)

// Gravity is shared by every demo scene; the units are roughly pixels.
var Gravity = vecmath.Vec(0, -98.1)

type Scene struct {
	Name  string
	build func(w *world.World) error
}

var Scenes = []Scene{
	{"floors", buildFloors},
	{"restitution", buildRestitution},
	{"drag", buildDrag},
	{"pile", buildPile},
	{"chains", buildChains},
}

// NewWorld returns a fresh world populated with s.
func NewWorld(s Scene, settings dynamics.Settings, logger log.Log) (*world.World, error) {
	w, err := world.New(Gravity, settings, logger)
	if err != nil {
		return nil, err
	}
	if err := s.build(w); err != nil {
		return nil, err
	}
	return w, nil
}

func addBox(w *world.World, halfWidth, halfHeight float64, pos vecmath.Vector2, density float64) (*dynamics.Body, error) {
	shape, err := geometry.NewBox(halfWidth, halfHeight)
	if err != nil {
		return nil, err
	}
	b := dynamics.NewBody(shape, pos, density)
	return b, w.AddBody(b)
}

func addCircle(w *world.World, radius float64, pos vecmath.Vector2, density float64) (*dynamics.Body, error) {
	shape, err := geometry.NewCircle(radius)
	if err != nil {
		return nil, err
	}
	b := dynamics.NewBody(shape, pos, density)
	return b, w.AddBody(b)
}

// buildFloors drops three balls onto two crossed, slightly tilted floors.
func buildFloors(w *world.World) error {
	for _, tilt := range []float64{3, -3} {
		floor, err := addBox(w, 390, 36, vecmath.Vec(0, -180), 0)
		if err != nil {
			return err
		}
		floor.SetOrient(math.Pi / 180 * tilt)
		floor.Restitution = 1
	}

	balls := []struct {
		x, y, r, e float64
	}{
		{-240, 150, 12, 0.5},
		{240, 80, 18, 0.3},
		{0, 190, 9, 1},
	}
	for _, c := range balls {
		b, err := addCircle(w, c.r, vecmath.Vec(c.x, c.y), 1)
		if err != nil {
			return err
		}
		b.Restitution = c.e
	}
	return nil
}

// buildRestitution drops three squares of increasing bounciness onto a
// platform.
func buildRestitution(w *world.World) error {
	if _, err := addBox(w, 200, 10, vecmath.Vec(0, -100), 0); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		b, err := addBox(w, 30, 30, vecmath.Vec(-100+float64(i)*100, 100), 1)
		if err != nil {
			return err
		}
		b.Restitution = float64(i) / 3
	}
	return nil
}

// buildDrag drops a row of balls with increasing linear damping.
func buildDrag(w *world.World) error {
	for i := 0; i < 13; i++ {
		b, err := addCircle(w, 10, vecmath.Vec(-190+30*float64(i), 100), 1)
		if err != nil {
			return err
		}
		b.LinearDamping = float64(i)
		b.Restitution = 0
	}
	floor, err := addBox(w, 200, 10, vecmath.Vec(0, -100), 0)
	if err != nil {
		return err
	}
	floor.Restitution = 1
	return nil
}

// buildPile stacks mixed shapes in a box for shattering and explosions.
func buildPile(w *world.World) error {
	walls := []struct {
		hw, hh, x, y float64
	}{
		{250, 10, 0, -150},
		{10, 150, -240, 0},
		{10, 150, 240, 0},
	}
	for _, wall := range walls {
		if _, err := addBox(w, wall.hw, wall.hh, vecmath.Vec(wall.x, wall.y), 0); err != nil {
			return err
		}
	}

	for i := 0; i < 30; i++ {
		pos := vecmath.Vec(-150+float64(i%6)*60, -100+float64(i/6)*45)
		switch i % 3 {
		case 0:
			if _, err := addCircle(w, 15, pos, 1); err != nil {
				return err
			}
		case 1:
			if _, err := addBox(w, 18, 14, pos, 1); err != nil {
				return err
			}
		default:
			shape, err := geometry.NewRegularPolygon(18, 3+i%5)
			if err != nil {
				return err
			}
			if err := w.AddBody(dynamics.NewBody(shape, pos, 1)); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildChains hangs a chain of planks from a fixed point above a ball.
func buildChains(w *world.World) error {
	if _, err := addCircle(w, 60, vecmath.Zero, 0); err != nil {
		return err
	}

	const links = 10
	spring := joints.Spring{NaturalLength: 1, Stiffness: 200, Damping: 10, CanGoSlack: true}
	left, right := vecmath.Vec(-20, 0), vecmath.Vec(20, 0)

	var prev *dynamics.Body
	for i := 0; i < links; i++ {
		link, err := addBox(w, 20, 5, vecmath.Vec(-20+40*links/2-40*float64(i), 200), 1)
		if err != nil {
			return err
		}

		var j joints.Joint
		if prev == nil {
			j, err = joints.NewToPoint(link, link.Position.Add(right), right, spring)
		} else {
			j, err = joints.NewToBody(prev, link, left, right, spring)
		}
		if err != nil {
			return err
		}
		if err := w.AddJoint(j); err != nil {
			return err
		}
		prev = link
	}
	return nil
}
