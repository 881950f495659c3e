package dynamics

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

func TestNewBody_Circle(t *testing.T) {
	shape, err := geometry.NewCircle(1)
	require.NoError(t, err)

	b := NewBody(shape, vecmath.Vec(3, 4), 1)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.InDelta(t, math.Pi, b.Mass, 1e-12)
	assert.InDelta(t, 1/math.Pi, b.InvMass, 1e-12)
	assert.InDelta(t, 1/b.Inertia, b.InvInertia, 1e-12)
	assert.False(t, b.IsStatic())
	assert.Equal(t, vecmath.Vec(2, 3), b.AABB.Min)
}

func TestNewBody_DistinctIDs(t *testing.T) {
	shape, _ := geometry.NewCircle(1)
	a := NewBody(shape, vecmath.Zero, 1)
	b := NewBody(shape, vecmath.Zero, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewBody_ShapeIsCopied(t *testing.T) {
	shape, _ := geometry.NewBox(1, 1)
	a := NewBody(shape, vecmath.Zero, 1)
	a.SetOrient(1)
	a.Shape.Vertices[0] = vecmath.Vec(9, 9)

	assert.Equal(t, vecmath.Vec(-1, -1), shape.Vertices[0])
	assert.Equal(t, vecmath.Identity, shape.Transform)
}

func TestNewBody_OffCentrePolygonKeepsWorldPlacement(t *testing.T) {
	shape, err := geometry.NewPolygon(vecmath.Vec(0, 0), vecmath.Vec(2, 0), vecmath.Vec(2, 2), vecmath.Vec(0, 2))
	require.NoError(t, err)

	b := NewBody(shape, vecmath.Vec(10, 10), 1)
	assert.InDelta(t, 11, b.Position.X, 1e-9)
	assert.InDelta(t, 11, b.Position.Y, 1e-9)
	assert.InDelta(t, 10, b.AABB.Min.X, 1e-9)
	assert.InDelta(t, 12, b.AABB.Max.Y, 1e-9)
}

func TestBody_MakeStatic(t *testing.T) {
	shape, _ := geometry.NewBox(1, 1)
	b := NewBody(shape, vecmath.Zero, 2)
	b.Velocity = vecmath.Vec(1, 1)
	b.AngularVelocity = 3
	b.MakeStatic()

	assert.True(t, b.IsStatic())
	assert.Zero(t, b.InvInertia)
	assert.True(t, b.Velocity.IsZero())
	assert.Zero(t, b.AngularVelocity)

	b.ApplyImpulse(vecmath.Vec(100, 0), vecmath.Vec(0, 1))
	assert.True(t, b.Velocity.IsZero())
	assert.Zero(t, b.AngularVelocity)
}

func TestBody_Impulses(t *testing.T) {
	shape, _ := geometry.NewCircle(1)
	b := NewBody(shape, vecmath.Zero, 1)
	b.Mass, b.InvMass, b.Inertia, b.InvInertia = 2, 0.5, 4, 0.25

	b.ApplyLinearImpulse(vecmath.Vec(2, 0))
	assert.Equal(t, vecmath.Vec(1, 0), b.Velocity)
	assert.Zero(t, b.AngularVelocity)

	b.ApplyImpulse(vecmath.Vec(0, 4), vecmath.Vec(1, 0))
	assert.Equal(t, vecmath.Vec(1, 2), b.Velocity)
	assert.Equal(t, 1.0, b.AngularVelocity)

	v := b.VelocityAt(vecmath.Vec(0, 1))
	assert.Equal(t, vecmath.Vec(0, 2), v)
}

func TestBody_Forces(t *testing.T) {
	shape, _ := geometry.NewCircle(1)
	b := NewBody(shape, vecmath.Zero, 1)
	b.ApplyForce(vecmath.Vec(1, 0))
	b.ApplyForceAt(vecmath.Vec(0, 2), vecmath.Vec(1, 0))
	b.ApplyTorque(1)
	assert.Equal(t, vecmath.Vec(1, 2), b.Force)
	assert.Equal(t, 3.0, b.Torque)

	b.ClearForces()
	assert.True(t, b.Force.IsZero())
	assert.Zero(t, b.Torque)
}

func TestBody_SetOrient(t *testing.T) {
	shape, _ := geometry.NewBox(2, 1)
	b := NewBody(shape, vecmath.Zero, 1)
	b.SetOrient(math.Pi / 2)
	assert.Equal(t, math.Pi/2, b.Orient)
	assert.Equal(t, vecmath.Rotation(math.Pi/2), b.Shape.Transform)
	assert.InDelta(t, 1, b.AABB.Max.X, 1e-9)
	assert.InDelta(t, 2, b.AABB.Max.Y, 1e-9)
}

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
	assert.InDelta(t, 1.0/60, DefaultSettings().TimeStep(), 1e-15)

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"negative epsilon", func(s *Settings) { s.Epsilon = -1 }},
		{"zero relative bias", func(s *Settings) { s.BiasRelative = 0 }},
		{"absolute bias too large", func(s *Settings) { s.BiasAbsolute = 1 }},
		{"negative allowance", func(s *Settings) { s.PenetrationAllowance = -0.1 }},
		{"correction above one", func(s *Settings) { s.PenetrationCorrection = 1.5 }},
		{"zero hertz", func(s *Settings) { s.Hertz = 0 }},
		{"no iterations", func(s *Settings) { s.Iterations = 0 }},
		{"negative cell size", func(s *Settings) { s.BroadPhaseCellSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}
