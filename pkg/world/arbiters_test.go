package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

func newBall(t *testing.T) *dynamics.Body {
	t.Helper()
	shape, err := geometry.NewCircle(1)
	require.NoError(t, err)
	return dynamics.NewBody(shape, vecmath.Zero, 1)
}

func newArbiter(t *testing.T, a, b *dynamics.Body) *collision.Arbiter {
	t.Helper()
	arb, err := collision.NewArbiter(a, b, nil)
	require.NoError(t, err)
	return arb
}

func TestArbiterTable_SharedKeyKeepsPairsApart(t *testing.T) {
	a, b, c, d := newBall(t), newBall(t), newBall(t), newBall(t)
	table := make(arbiterTable)

	// file the c-d arbiter under the a-b key, as a hash collision would
	other := newArbiter(t, c, d)
	table[pairKey(a, b)] = []*collision.Arbiter{other}

	assert.Nil(t, table.find(a, b))

	mine := newArbiter(t, a, b)
	table.put(mine)
	assert.Same(t, mine, table.find(a, b))
	assert.Len(t, table[pairKey(a, b)], 2)
	assert.Nil(t, table.find(b, a), "pairs are ordered")
}

func TestArbiterTable_Retain(t *testing.T) {
	a, b, c := newBall(t), newBall(t), newBall(t)
	table := make(arbiterTable)
	ab := newArbiter(t, a, b)
	bc := newArbiter(t, b, c)
	table.put(ab)
	table.put(bc)

	table.retain(func(arb *collision.Arbiter) bool { return arb.A != a })
	assert.Nil(t, table.find(a, b))
	assert.Same(t, bc, table.find(b, c))
	assert.Len(t, table, 1)

	table.retain(func(*collision.Arbiter) bool { return false })
	assert.Empty(t, table)
}
