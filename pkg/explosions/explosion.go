// Package explosions pushes bodies away from a point.
//
// Both kinds follow the same two phase protocol: Update picks the bodies the
// blast reaches, ApplyBlastImpulse hits them. The blast falls off with 1/d.
package explosions

import (
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

type Explosion interface {
	SetEpicentre(v vecmath.Vector2)
	Update(bodies []*dynamics.Body)
	ApplyBlastImpulse(power float64)
}

var (
	_ Explosion = (*ProximityExplosion)(nil)
	_ Explosion = (*RaycastExplosion)(nil)
)

// blastImpulse is the impulse power delivers along from->to. A zero length
// blast has no direction and yields false.
func blastImpulse(from, to vecmath.Vector2, power float64) (vecmath.Vector2, bool) {
	dir := to.Sub(from)
	distance := dir.Len()
	if distance == 0 {
		return vecmath.Zero, false
	}
	return dir.Scale(power / (distance * distance)), true
}
