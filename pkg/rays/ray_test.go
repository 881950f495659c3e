package rays

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

const tolerance = 1e-9

func box(t *testing.T, halfWidth, halfHeight, x, y float64) *dynamics.Body {
	t.Helper()
	shape, err := geometry.NewBox(halfWidth, halfHeight)
	require.NoError(t, err)
	return dynamics.NewBody(shape, vecmath.Vec(x, y), 1)
}

func circle(t *testing.T, radius, x, y float64) *dynamics.Body {
	t.Helper()
	shape, err := geometry.NewCircle(radius)
	require.NoError(t, err)
	return dynamics.NewBody(shape, vecmath.Vec(x, y), 1)
}

func TestRayCast(t *testing.T) {
	square := box(t, 1, 1, 5, 0)
	ball := circle(t, 1, 5, 0)

	tests := []struct {
		name     string
		ray      Ray
		bodies   []*dynamics.Body
		wantHit  bool
		wantBody *dynamics.Body
		point    vecmath.Vector2
	}{
		{"polygon face", New(vecmath.Zero, vecmath.Right, 10), []*dynamics.Body{square}, true, square, vecmath.Vec(4, 0)},
		{"circle", New(vecmath.Zero, vecmath.Vec(2, 0), 10), []*dynamics.Body{ball}, true, ball, vecmath.Vec(4, 0)},
		{"too short", New(vecmath.Zero, vecmath.Right, 3), []*dynamics.Body{square, ball}, false, nil, vecmath.Zero},
		{"pointing away", New(vecmath.Zero, vecmath.Left, 10), []*dynamics.Body{square, ball}, false, nil, vecmath.Zero},
		{"from inside circle", New(vecmath.Vec(5, 0), vecmath.Right, 10), []*dynamics.Body{ball}, false, nil, vecmath.Zero},
		{"from inside polygon", New(vecmath.Vec(5, 0), vecmath.Right, 10), []*dynamics.Body{square}, false, nil, vecmath.Zero},
		{"inside polygon, hits the next one", New(vecmath.Vec(5, 0), vecmath.Left, 10), []*dynamics.Body{square, box(t, 1, 1, 0, 0)}, true, nil, vecmath.Vec(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.ray.Cast(tt.bodies)
			require.Equal(t, tt.wantHit, ok)
			if !ok {
				return
			}
			if tt.wantBody != nil {
				assert.Same(t, tt.wantBody, hit.Body)
			}
			assert.InDelta(t, tt.point.X, hit.Point.X, tolerance)
			assert.InDelta(t, tt.point.Y, hit.Point.Y, tolerance)
			assert.InDelta(t, tt.point.Distance(tt.ray.Origin), hit.Distance, tolerance)
		})
	}
}

func TestRayCast_ClosestWins(t *testing.T) {
	near := box(t, 1, 1, 5, 0)
	far := circle(t, 1, 9, 0)

	hit, ok := New(vecmath.Zero, vecmath.Right, 20).Cast([]*dynamics.Body{far, near})
	require.True(t, ok)
	assert.Same(t, near, hit.Body)
	assert.InDelta(t, 4, hit.Distance, tolerance)
}

func TestRayCast_RotatedPolygon(t *testing.T) {
	diamond := box(t, 1, 1, 5, 0)
	diamond.SetOrient(math.Pi / 4)

	hit, ok := New(vecmath.Vec(0, 0.2), vecmath.Right, 20).Cast([]*dynamics.Body{diamond})
	require.True(t, ok)
	// the left corner sits at x = 5 - sqrt(2); the edge above it rises at 45 degrees
	assert.InDelta(t, 5-math.Sqrt2+0.2, hit.Point.X, tolerance)
}

func TestScatter(t *testing.T) {
	square := box(t, 1, 1, 5, 0)
	ball := circle(t, 1, 0, 5)

	s := NewScatter(vecmath.Zero, 4, 10)
	require.Len(t, s.Rays, 4)

	hits := s.Cast([]*dynamics.Body{square, ball})
	require.Len(t, hits, 2)
	assert.Same(t, square, hits[0].Body)
	assert.Same(t, ball, hits[1].Body)
	assert.InDelta(t, 4, hits[1].Point.Y, tolerance)

	s.SetOrigin(vecmath.Vec(0, 20))
	for _, r := range s.Rays {
		assert.Equal(t, vecmath.Vec(0, 20), r.Origin)
	}
	assert.Empty(t, s.Cast([]*dynamics.Body{square}))
}

func TestShadowCaster(t *testing.T) {
	square := box(t, 1, 1, 5, 0)
	ball := circle(t, 1, -5, 3)

	caster := ShadowCaster{Origin: vecmath.Zero, Distance: 50}
	projected := caster.Project([]*dynamics.Body{square, ball})

	// three rays per polygon vertex, three per circle tangent
	require.Len(t, projected, 4*3+2*3)
	for i := 1; i < len(projected); i++ {
		assert.GreaterOrEqual(t, projected[i-1].Angle, projected[i].Angle)
	}

	hits := 0
	for _, r := range projected {
		if r.OK {
			hits++
		}
	}
	assert.Positive(t, hits)
}

func TestShadowCaster_OriginInsideBody(t *testing.T) {
	square := box(t, 1, 1, 5, 0)
	caster := ShadowCaster{Origin: vecmath.Vec(5, 0), Distance: 50}
	assert.Empty(t, caster.Project([]*dynamics.Body{circle(t, 1, -5, 0), square}))
}
