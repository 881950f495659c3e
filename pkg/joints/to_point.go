package joints

import (
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// ToPoint hangs Body from a fixed world point. Offset is the attachment on
// the body in its own frame and turns with it.
type ToPoint struct {
	Spring
	Body   *dynamics.Body
	Point  vecmath.Vector2
	Offset vecmath.Vector2
}

func NewToPoint(body *dynamics.Body, point, offset vecmath.Vector2, spring Spring) (*ToPoint, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := spring.Validate(); err != nil {
		return nil, err
	}
	return &ToPoint{Spring: spring, Body: body, Point: point, Offset: offset}, nil
}

// Attachment is the world position of Offset.
func (j *ToPoint) Attachment() vecmath.Vector2 {
	return attachment(j.Body, j.Offset)
}

func (j *ToPoint) measure() span {
	p := j.Attachment()
	return measure(p, j.Point, j.Body.VelocityAt(p.Sub(j.Body.Position)), vecmath.Zero)
}

func (j *ToPoint) Tension() float64 {
	s := j.measure()
	return j.tension(s.length, s.rate)
}

func (j *ToPoint) ApplyTension() {
	s := j.measure()
	if s.length == 0 {
		return
	}
	t := j.tension(s.length, s.rate)
	if t == 0 {
		return
	}
	j.Body.ApplyImpulse(s.dir.Scale(t), s.from.Sub(j.Body.Position))
}

func (j *ToPoint) Endpoints() (vecmath.Vector2, vecmath.Vector2) {
	return j.Attachment(), j.Point
}

func (j *ToPoint) Bodies() []*dynamics.Body {
	return []*dynamics.Body{j.Body}
}
