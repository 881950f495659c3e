package explosions

import (
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/rays"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// RaycastExplosion scatters rays from the epicentre and pushes every body at
// the point a ray hits it, so off-centre hits also spin the body.
type RaycastExplosion struct {
	scatter *rays.Scatter
	hits    []rays.Hit
}

func NewRaycast(epicentre vecmath.Vector2, count int, distance float64) *RaycastExplosion {
	return &RaycastExplosion{scatter: rays.NewScatter(epicentre, count, distance)}
}

func (e *RaycastExplosion) SetEpicentre(v vecmath.Vector2) {
	e.scatter.SetOrigin(v)
}

func (e *RaycastExplosion) Epicentre() vecmath.Vector2 {
	return e.scatter.Origin
}

func (e *RaycastExplosion) Update(bodies []*dynamics.Body) {
	e.hits = e.scatter.Cast(bodies)
}

// Hits lists the ray hits found by the last Update.
func (e *RaycastExplosion) Hits() []rays.Hit {
	return e.hits
}

// Rays exposes the scattered rays for drawing.
func (e *RaycastExplosion) Rays() []rays.Ray {
	return e.scatter.Rays
}

func (e *RaycastExplosion) ApplyBlastImpulse(power float64) {
	for _, hit := range e.hits {
		impulse, ok := blastImpulse(e.scatter.Origin, hit.Point, power)
		if !ok {
			continue
		}
		hit.Body.ApplyImpulse(impulse, hit.Point.Sub(hit.Body.Position))
	}
}
