package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector2_ValueOpsLeaveReceiver(t *testing.T) {
	v := Vec(3, 4)

	_ = v.Add(Vec(1, 1))
	_ = v.Sub(Vec(1, 1))
	_ = v.Scale(2)
	_ = v.Neg()
	_ = v.Normalized()

	assert.Equal(t, Vec(3, 4), v)
}

func TestVector2_PointerOpsMutate(t *testing.T) {
	v := Vec(3, 4)
	v.Normalize()
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)

	v.Negate()
	assert.InDelta(t, -0.6, v.X, 1e-12)

	v.Set(Vec(1, 2)).AddAssign(Vec(1, 1)).ScaleAssign(2).SubAssign(Vec(1, 1))
	assert.Equal(t, Vec(3, 5), v)
}

func TestVector2_NormalizeZero(t *testing.T) {
	v := Zero
	v.Normalize()
	assert.True(t, v.IsZero())
	assert.True(t, Zero.Normalized().IsZero())
}

func TestVector2_Products(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(3, -1)

	assert.Equal(t, 1.0, a.Dot(b))
	assert.Equal(t, -7.0, a.Cross(b))
	assert.Equal(t, Vec(-4, 2), CrossSV(2, a))
	assert.Equal(t, Vec(4, -2), CrossVS(a, 2))
	assert.Equal(t, CrossVS(a, 2), a.CrossScalar(2))
	assert.Equal(t, Vec(-2, 1), a.Normal())
}

func TestVector2_Lengths(t *testing.T) {
	a := Vec(3, 4)
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, 25.0, a.LenSqr())
	assert.Equal(t, 5.0, Zero.Distance(a))
	assert.Equal(t, 25.0, Zero.DistanceSqr(a))
}

func TestVector2_IsValid(t *testing.T) {
	assert.True(t, Vec(1, 1).IsValid())
	assert.False(t, Vec(math.NaN(), 1).IsValid())
	assert.False(t, Vec(1, math.Inf(-1)).IsValid())
}

func TestMat2_Rotation(t *testing.T) {
	m := Rotation(math.Pi / 2)
	v := m.MulVec(Right)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)

	back := m.Transpose().MulVec(v)
	assert.InDelta(t, 1, back.X, 1e-12)
	assert.InDelta(t, 0, back.Y, 1e-12)

	var n Mat2
	n.Set(math.Pi / 2)
	assert.Equal(t, m, n)

	id := m.Mul(m.Transpose())
	assert.InDelta(t, 1, id.M00, 1e-12)
	assert.InDelta(t, 0, id.M01, 1e-12)
	assert.InDelta(t, 0, id.M10, 1e-12)
	assert.InDelta(t, 1, id.M11, 1e-12)
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi)
	require.InDelta(t, -1, v.X, 1e-12)
	require.InDelta(t, 0, v.Y, 1e-12)
	assert.InDelta(t, 1, v.Len(), 1e-12)
}
