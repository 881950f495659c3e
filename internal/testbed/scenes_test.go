package testbed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

func TestScenesBuildAndStep(t *testing.T) {
	settings := dynamics.DefaultSettings()
	settings.Iterations = 10
	for _, s := range Scenes {
		t.Run(s.Name, func(t *testing.T) {
			w, err := NewWorld(s, settings, log.NewNop())
			require.NoError(t, err)
			require.NotEmpty(t, w.Bodies())
			for i := 0; i < 30; i++ {
				require.NoError(t, w.Step(context.Background(), 1.0/60))
			}
			for _, b := range w.Bodies() {
				assert.True(t, b.Position.IsValid(), "body %s", b.ID)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := Camera{Center: vecmath.Vec(600, 400), Zoom: 1.5}
	p := vecmath.Vec(-20, 35)
	s := c.ToScreen(p)
	assert.Less(t, s.Y, 400.0, "y up in the world is up on screen")
	back := c.ToWorld(s.X, s.Y)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestChainsScene(t *testing.T) {
	var chains Scene
	for _, s := range Scenes {
		if s.Name == "chains" {
			chains = s
		}
	}
	require.NotNil(t, chains.build)

	w, err := NewWorld(chains, dynamics.DefaultSettings(), log.NewNop())
	require.NoError(t, err)
	require.Len(t, w.Bodies(), 11)
	require.Len(t, w.Joints(), 10)

	// every link starts end to end with its neighbour, the first at its anchor
	for _, j := range w.Joints() {
		from, to := j.Endpoints()
		assert.InDelta(t, 0, from.Distance(to), 1e-9)
	}
}
