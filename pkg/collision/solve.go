package collision

import (
	"math"

	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// Solve applies the normal impulse for the current manifold to both bodies,
// followed by the friction impulse when Settings.Friction is on. Bodies that
// are separating along the normal are left alone.
func (arb *Arbiter) Solve() {
	a, b := arb.A, arb.B

	for i := 0; i < arb.ContactCount; i++ {
		contact := arb.Contacts[i]
		rA := contact.Sub(a.Position)
		rB := contact.Sub(b.Position)

		rv := b.VelocityAt(rB).Sub(a.VelocityAt(rA))
		contactVelocity := rv.Dot(arb.Normal)
		if contactVelocity >= 0 {
			return
		}

		raCrossN := rA.Cross(arb.Normal)
		rbCrossN := rB.Cross(arb.Normal)
		invMassSum := a.InvMass + b.InvMass + raCrossN*raCrossN*a.InvInertia + rbCrossN*rbCrossN*b.InvInertia

		j := -(arb.Restitution + 1) * contactVelocity
		j /= invMassSum
		j /= float64(arb.ContactCount)

		impulse := arb.Normal.Scale(j)
		b.ApplyImpulse(impulse, rB)
		a.ApplyImpulse(impulse.Neg(), rA)

		if arb.settings.Friction {
			arb.applyFriction(invMassSum, rA, rB, j)
		}
	}
}

// applyFriction applies a Coulomb friction impulse along the contact tangent
// using the post-impulse relative velocity. j is the normal impulse just
// applied.
func (arb *Arbiter) applyFriction(invMassSum float64, rA, rB vecmath.Vector2, j float64) {
	a, b := arb.A, arb.B

	rv := b.VelocityAt(rB).Sub(a.VelocityAt(rA))
	tangent := rv.Sub(arb.Normal.Scale(rv.Dot(arb.Normal))).Normalized()

	jt := -rv.Dot(tangent)
	jt /= invMassSum
	jt /= float64(arb.ContactCount)
	if math.Abs(jt) <= arb.settings.Epsilon {
		return
	}

	staticFriction := math.Min(a.StaticFriction, b.StaticFriction)
	dynamicFriction := math.Min(a.DynamicFriction, b.DynamicFriction)

	var tangentImpulse vecmath.Vector2
	if math.Abs(jt) < j*staticFriction {
		tangentImpulse = tangent.Scale(jt)
	} else {
		tangentImpulse = tangent.Scale(-j * dynamicFriction)
	}

	b.ApplyImpulse(tangentImpulse, rB)
	a.ApplyImpulse(tangentImpulse.Neg(), rA)
}
