// Package dynamics holds rigid body state and the simulation tunables.
package dynamics

import (
	"github.com/google/uuid"

	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

type Body struct {
	ID    uuid.UUID
	Shape geometry.Shape

	Position vecmath.Vector2
	Velocity vecmath.Vector2
	Force    vecmath.Vector2

	Orient          float64
	AngularVelocity float64
	Torque          float64

	Density    float64
	Mass       float64
	InvMass    float64
	Inertia    float64
	InvInertia float64

	Restitution     float64
	StaticFriction  float64
	DynamicFriction float64
	LinearDamping   float64
	AngularDamping  float64

	AffectedByGravity bool

	AABB geometry.AABB
}

// NewBody places a copy of shape at position and derives mass data from
// density. Density 0 gives an immovable body.
func NewBody(shape geometry.Shape, position vecmath.Vector2, density float64) *Body {
	b := &Body{
		ID:                uuid.New(),
		Shape:             shape.Clone(),
		Position:          position,
		StaticFriction:    0.5,
		DynamicFriction:   0.2,
		Restitution:       0.2,
		AffectedByGravity: true,
	}
	b.Shape.Transform = vecmath.Identity
	b.SetDensity(density)
	b.UpdateAABB()
	return b
}

// SetDensity recomputes mass and inertia. Polygon vertices are recentred on
// their centroid and Position is moved by the same offset, so the body does
// not jump in world space.
func (b *Body) SetDensity(density float64) {
	b.Density = density
	md, offset := b.Shape.ComputeMass(density)
	if !offset.IsZero() {
		b.Position.AddAssign(b.Shape.Transform.MulVec(offset))
	}
	b.Mass = md.Mass
	b.Inertia = md.Inertia
	b.InvMass = 0
	if b.Mass != 0 {
		b.InvMass = 1 / b.Mass
	}
	b.InvInertia = 0
	if b.Inertia != 0 {
		b.InvInertia = 1 / b.Inertia
	}
}

// MakeStatic turns the body into an immovable one.
func (b *Body) MakeStatic() {
	b.SetDensity(0)
	b.Velocity = vecmath.Zero
	b.AngularVelocity = 0
}

func (b *Body) IsStatic() bool {
	return b.InvMass == 0
}

func (b *Body) SetOrient(radians float64) {
	b.Orient = radians
	b.Shape.Transform.Set(radians)
	b.UpdateAABB()
}

func (b *Body) UpdateAABB() {
	b.AABB = b.Shape.Bounds(b.Position)
}

func (b *Body) ApplyForce(force vecmath.Vector2) {
	b.Force.AddAssign(force)
}

// ApplyForceAt adds force acting at contactVector, relative to the centre of mass.
func (b *Body) ApplyForceAt(force, contactVector vecmath.Vector2) {
	b.Force.AddAssign(force)
	b.Torque += contactVector.Cross(force)
}

func (b *Body) ApplyTorque(torque float64) {
	b.Torque += torque
}

// ApplyLinearImpulse changes velocity by impulse through the centre of mass.
func (b *Body) ApplyLinearImpulse(impulse vecmath.Vector2) {
	b.Velocity.AddAssign(impulse.Scale(b.InvMass))
}

// ApplyImpulse applies impulse at contactVector, relative to the centre of
// mass, affecting both linear and angular velocity.
func (b *Body) ApplyImpulse(impulse, contactVector vecmath.Vector2) {
	b.Velocity.AddAssign(impulse.Scale(b.InvMass))
	b.AngularVelocity += b.InvInertia * contactVector.Cross(impulse)
}

// VelocityAt returns the velocity of the world point at offset r from the
// centre of mass.
func (b *Body) VelocityAt(r vecmath.Vector2) vecmath.Vector2 {
	return b.Velocity.Add(vecmath.CrossSV(b.AngularVelocity, r))
}

func (b *Body) ClearForces() {
	b.Force = vecmath.Zero
	b.Torque = 0
}
