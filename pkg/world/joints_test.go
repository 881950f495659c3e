package world

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/joints"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

func TestAddJoint_Errors(t *testing.T) {
	w := newWorld(t, vecmath.Zero, dynamics.DefaultSettings())
	a := addCircle(t, w, 1, 0, 0, 1)

	shape, err := geometry.NewCircle(1)
	require.NoError(t, err)
	stranger := dynamics.NewBody(shape, vecmath.Vec(3, 0), 1)

	assert.ErrorIs(t, w.AddJoint(nil), ErrNilJoint)

	j, err := joints.NewToBody(a, stranger, vecmath.Zero, vecmath.Zero, joints.Spring{})
	require.NoError(t, err)
	assert.ErrorIs(t, w.AddJoint(j), ErrUnknownBody)

	anchor, err := joints.NewToPoint(a, vecmath.Vec(0, 5), vecmath.Zero, joints.Spring{})
	require.NoError(t, err)
	require.NoError(t, w.AddJoint(anchor))
	assert.ErrorIs(t, w.AddJoint(anchor), ErrDuplicateJoint)
	assert.Equal(t, []joints.Joint{anchor}, w.Joints())

	require.NoError(t, w.RemoveJoint(anchor))
	assert.ErrorIs(t, w.RemoveJoint(anchor), ErrUnknownJoint)
	assert.Empty(t, w.Joints())
}

func TestStep_StretchedJointPullsBack(t *testing.T) {
	w := newWorld(t, vecmath.Zero, dynamics.DefaultSettings())
	b := addCircle(t, w, 1, 0, 0, 1)
	j, err := joints.NewToPoint(b, vecmath.Vec(0, 5), vecmath.Zero, joints.Spring{NaturalLength: 1, Stiffness: 10})
	require.NoError(t, err)
	require.NoError(t, w.AddJoint(j))

	require.NoError(t, w.Step(context.Background(), 1.0/60))
	assert.InDelta(t, 40/math.Pi, b.Velocity.Y, tolerance)
	assert.InDelta(t, 40/math.Pi/60, b.Position.Y, tolerance)
	assert.InDelta(t, 0, b.Position.X, tolerance)
}

func TestStep_SlackJointAppliesNothing(t *testing.T) {
	w := newWorld(t, vecmath.Zero, dynamics.DefaultSettings())
	b := addCircle(t, w, 1, 0, 0, 1)
	b.Velocity = vecmath.Vec(1, 0)
	j, err := joints.NewToPoint(b, vecmath.Vec(0, 5), vecmath.Zero,
		joints.Spring{NaturalLength: 10, Stiffness: 10, Damping: 10, CanGoSlack: true})
	require.NoError(t, err)
	require.NoError(t, w.AddJoint(j))

	require.NoError(t, w.Step(context.Background(), 1.0/60))
	assert.Equal(t, vecmath.Vec(1, 0), b.Velocity)
}

func TestStep_HangingBodySettles(t *testing.T) {
	w := newWorld(t, vecmath.Vec(0, -10), dynamics.DefaultSettings())
	b := addCircle(t, w, 1, 0, -2, 1)
	j, err := joints.NewToPoint(b, vecmath.Zero, vecmath.Zero, joints.Spring{NaturalLength: 2, Stiffness: 2, Damping: 1})
	require.NoError(t, err)
	require.NoError(t, w.AddJoint(j))

	for i := 0; i < 300; i++ {
		require.NoError(t, w.Step(context.Background(), 1.0/60))
	}
	// stretched by the weight, hanging straight down
	assert.InDelta(t, 0, b.Position.X, tolerance)
	assert.Less(t, b.Position.Y, -2.0)
	assert.Greater(t, b.Position.Y, -2.5)
	assert.Less(t, b.Velocity.Len(), 0.05)
}

func TestRemoveBody_DropsItsJoints(t *testing.T) {
	w := newWorld(t, vecmath.Zero, dynamics.DefaultSettings())
	a := addCircle(t, w, 1, 0, 0, 1)
	b := addCircle(t, w, 1, 5, 0, 1)
	c := addCircle(t, w, 1, 10, 0, 1)

	ab, err := joints.NewToBody(a, b, vecmath.Zero, vecmath.Zero, joints.Spring{NaturalLength: 5})
	require.NoError(t, err)
	bc, err := joints.NewToBody(b, c, vecmath.Zero, vecmath.Zero, joints.Spring{NaturalLength: 5})
	require.NoError(t, err)
	require.NoError(t, w.AddJoint(ab))
	require.NoError(t, w.AddJoint(bc))

	require.NoError(t, w.RemoveBody(a))
	assert.Equal(t, []joints.Joint{bc}, w.Joints())

	w.Clear()
	assert.Empty(t, w.Joints())
}
