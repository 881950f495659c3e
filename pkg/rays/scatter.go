package rays

import (
	"math"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// Scatter is a fan of rays spread evenly around one origin.
type Scatter struct {
	Origin vecmath.Vector2
	Rays   []Ray
}

func NewScatter(origin vecmath.Vector2, count int, distance float64) *Scatter {
	s := &Scatter{Origin: origin, Rays: make([]Ray, count)}
	for i := range s.Rays {
		angle := 2 * math.Pi * float64(i) / float64(count)
		s.Rays[i] = FromAngle(origin, angle, distance)
	}
	return s
}

// SetOrigin moves every ray of the fan.
func (s *Scatter) SetOrigin(origin vecmath.Vector2) {
	s.Origin = origin
	for i := range s.Rays {
		s.Rays[i].Origin = origin
	}
}

// Cast returns the hit of every ray that touched something, in ray order.
func (s *Scatter) Cast(bodies []*dynamics.Body) []Hit {
	var hits []Hit
	for _, r := range s.Rays {
		if hit, ok := r.Cast(bodies); ok {
			hits = append(hits, hit)
		}
	}
	return hits
}
