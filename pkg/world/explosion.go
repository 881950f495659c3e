package world

import (
	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/explosions"
)

// ApplyExplosion lets e pick its targets among the world's bodies and hits
// them with power. The impulses show up in the next Step.
func (w *World) ApplyExplosion(e explosions.Explosion, power float64) {
	e.Update(w.bodies)
	e.ApplyBlastImpulse(power)
	w.logger.Debug("explosion", log.Float64("power", power))
}
