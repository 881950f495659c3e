package joints

import (
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

// ToBody links two bodies. Each offset is in its own body's frame.
type ToBody struct {
	Spring
	A, B             *dynamics.Body
	OffsetA, OffsetB vecmath.Vector2
}

func NewToBody(a, b *dynamics.Body, offsetA, offsetB vecmath.Vector2, spring Spring) (*ToBody, error) {
	if a == nil || b == nil {
		return nil, ErrNilBody
	}
	if a == b {
		return nil, ErrSameBody
	}
	if err := spring.Validate(); err != nil {
		return nil, err
	}
	return &ToBody{Spring: spring, A: a, B: b, OffsetA: offsetA, OffsetB: offsetB}, nil
}

func (j *ToBody) measure() span {
	pa := attachment(j.A, j.OffsetA)
	pb := attachment(j.B, j.OffsetB)
	return measure(pa, pb,
		j.A.VelocityAt(pa.Sub(j.A.Position)),
		j.B.VelocityAt(pb.Sub(j.B.Position)),
	)
}

func (j *ToBody) Tension() float64 {
	s := j.measure()
	return j.tension(s.length, s.rate)
}

// ApplyTension pulls A towards B and B towards A by the same impulse.
func (j *ToBody) ApplyTension() {
	s := j.measure()
	if s.length == 0 {
		return
	}
	t := j.tension(s.length, s.rate)
	if t == 0 {
		return
	}
	impulse := s.dir.Scale(t)
	j.A.ApplyImpulse(impulse, s.from.Sub(j.A.Position))
	j.B.ApplyImpulse(impulse.Neg(), s.to.Sub(j.B.Position))
}

func (j *ToBody) Endpoints() (vecmath.Vector2, vecmath.Vector2) {
	return attachment(j.A, j.OffsetA), attachment(j.B, j.OffsetB)
}

func (j *ToBody) Bodies() []*dynamics.Body {
	return []*dynamics.Body{j.A, j.B}
}
