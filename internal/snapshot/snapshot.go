// Package snapshot serialises world state and streams it to websocket
// clients.
package snapshot

import (
	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/joints"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

const TypeSync = "sync"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func point(v vecmath.Vector2) Point {
	return Point{X: v.X, Y: v.Y}
}

// BodyState is one body as clients see it. Vertices are in the body's local
// frame; clients rotate them by Angle and add Position.
type BodyState struct {
	Position Point   `json:"position"`
	Angle    float64 `json:"angle"`
	Shape    string  `json:"shape"`
	Radius   float64 `json:"radius,omitempty"`
	Vertices []Point `json:"vertices,omitempty"`
	Static   bool    `json:"static,omitempty"`
}

// Segment is a joint drawn between its two attachment points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

type Contact struct {
	Point  Point `json:"point"`
	Normal Point `json:"normal"`
}

// Message is the sync frame, keyed by body id.
type Message struct {
	Type     string               `json:"type"`
	Tick     uint64               `json:"tick"`
	Data     map[string]BodyState `json:"data"`
	Contacts []Contact            `json:"contacts,omitempty"`
	Joints   []Segment            `json:"joints,omitempty"`
}

// Capture copies the state of bodies, the contact points of arbiters and the
// endpoints of js.
func Capture(tick uint64, bodies []*dynamics.Body, arbiters []*collision.Arbiter, js []joints.Joint) Message {
	msg := Message{
		Type: TypeSync,
		Tick: tick,
		Data: make(map[string]BodyState, len(bodies)),
	}
	for _, b := range bodies {
		state := BodyState{
			Position: point(b.Position),
			Angle:    b.Orient,
			Shape:    b.Shape.Type.String(),
			Static:   b.IsStatic(),
		}
		switch b.Shape.Type {
		case geometry.Circle:
			state.Radius = b.Shape.Radius
		case geometry.Polygon:
			state.Vertices = make([]Point, len(b.Shape.Vertices))
			for i, v := range b.Shape.Vertices {
				state.Vertices[i] = point(v)
			}
		}
		msg.Data[b.ID.String()] = state
	}
	for _, arb := range arbiters {
		for i := 0; i < arb.ContactCount; i++ {
			msg.Contacts = append(msg.Contacts, Contact{
				Point:  point(arb.Contacts[i]),
				Normal: point(arb.Normal),
			})
		}
	}
	for _, j := range js {
		from, to := j.Endpoints()
		msg.Joints = append(msg.Joints, Segment{From: point(from), To: point(to)})
	}
	return msg
}
