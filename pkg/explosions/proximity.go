package explosions

import (
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// ProximityExplosion hits the centre of mass of every body within Radius.
type ProximityExplosion struct {
	Epicentre vecmath.Vector2
	Radius    float64

	affected []*dynamics.Body
}

func NewProximity(epicentre vecmath.Vector2, radius float64) *ProximityExplosion {
	return &ProximityExplosion{Epicentre: epicentre, Radius: radius}
}

func (e *ProximityExplosion) SetEpicentre(v vecmath.Vector2) {
	e.Epicentre = v
}

func (e *ProximityExplosion) Update(bodies []*dynamics.Body) {
	e.affected = e.affected[:0]
	for _, b := range bodies {
		if b.Position.Distance(e.Epicentre) <= e.Radius {
			e.affected = append(e.affected, b)
		}
	}
}

// Affected lists the bodies picked by the last Update.
func (e *ProximityExplosion) Affected() []*dynamics.Body {
	return e.affected
}

// ApplyBlastImpulse gives each affected body a linear impulse of power/d
// directed away from the epicentre. A body sitting on the epicentre is left
// alone.
func (e *ProximityExplosion) ApplyBlastImpulse(power float64) {
	for _, b := range e.affected {
		if impulse, ok := blastImpulse(e.Epicentre, b.Position, power); ok {
			b.ApplyLinearImpulse(impulse)
		}
	}
}
