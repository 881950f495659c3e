package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/joints"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

func bodies(t *testing.T) (*dynamics.Body, *dynamics.Body) {
	t.Helper()
	circle, err := geometry.NewCircle(1)
	require.NoError(t, err)
	box, err := geometry.NewBox(1, 1)
	require.NoError(t, err)

	ball := dynamics.NewBody(circle, vecmath.Vec(0, 1.5), 1)
	ground := dynamics.NewBody(box, vecmath.Zero, 0)
	ground.SetOrient(0.25)
	return ball, ground
}

func TestCapture(t *testing.T) {
	ball, ground := bodies(t)
	arb, err := collision.NewArbiter(ball, ground, nil)
	require.NoError(t, err)
	arb.NarrowPhase()
	require.True(t, arb.Colliding())

	rope, err := joints.NewToPoint(ball, vecmath.Vec(0, 5), vecmath.Zero, joints.Spring{NaturalLength: 3})
	require.NoError(t, err)

	msg := Capture(7, []*dynamics.Body{ball, ground}, []*collision.Arbiter{arb}, []joints.Joint{rope})
	assert.Equal(t, TypeSync, msg.Type)
	assert.Equal(t, uint64(7), msg.Tick)
	require.Len(t, msg.Data, 2)

	b := msg.Data[ball.ID.String()]
	assert.Equal(t, "circle", b.Shape)
	assert.Equal(t, 1.0, b.Radius)
	assert.Equal(t, Point{X: 0, Y: 1.5}, b.Position)
	assert.False(t, b.Static)

	g := msg.Data[ground.ID.String()]
	assert.Equal(t, "polygon", g.Shape)
	assert.Equal(t, 0.25, g.Angle)
	assert.Len(t, g.Vertices, 4)
	assert.True(t, g.Static)

	require.Len(t, msg.Contacts, 1)
	assert.Equal(t, point(arb.Contacts[0]), msg.Contacts[0].Point)

	require.Len(t, msg.Joints, 1)
	assert.Equal(t, Segment{From: Point{X: 0, Y: 1.5}, To: Point{X: 0, Y: 5}}, msg.Joints[0])
}

func TestMessage_JSON(t *testing.T) {
	ball, _ := bodies(t)
	data, err := json.Marshal(Capture(1, []*dynamics.Body{ball}, nil, nil))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "sync", raw["type"])
	assert.NotContains(t, raw, "contacts")
	assert.NotContains(t, raw, "joints")

	entry := raw["data"].(map[string]any)[ball.ID.String()].(map[string]any)
	assert.Equal(t, map[string]any{"x": 0.0, "y": 1.5}, entry["position"])
	assert.NotContains(t, entry, "vertices")
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(log.NewNop())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	ball, ground := bodies(t)
	require.NoError(t, hub.Broadcast(Capture(1, []*dynamics.Body{ball}, nil, nil)))

	conn := dial(t, srv)
	// the latest snapshot is replayed on connect
	first := readMessage(t, conn)
	assert.Equal(t, uint64(1), first.Tick)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast(Capture(2, []*dynamics.Body{ball, ground}, nil, nil)))
	second := readMessage(t, conn)
	assert.Equal(t, uint64(2), second.Tick)
	assert.Len(t, second.Data, 2)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 5*time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Zero(t, hub.ClientCount())
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestHub_Healthz(t *testing.T) {
	srv := httptest.NewServer(NewHub(nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestServeListener_StopsWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeListener(ctx, ln, NewHub(nil), log.NewNop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
