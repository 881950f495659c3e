package config

import (
	"fmt"

	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/geometry"
	"github.com/koteyur/impulse2d/pkg/vecmath"
)

const (
	ShapeCircle  = "circle"
	ShapeBox     = "box"
	ShapeRegular = "regular"
	ShapePolygon = "polygon"
)

// BodyConfig describes one body. Optional material fields left out keep the
// body defaults; a missing density means 1, an explicit 0 makes the body
// immovable.
type BodyConfig struct {
	Shape    string            `yaml:"shape"`
	Radius   float64           `yaml:"radius,omitempty"`
	Width    float64           `yaml:"width,omitempty"`
	Height   float64           `yaml:"height,omitempty"`
	Sides    int               `yaml:"sides,omitempty"`
	Vertices []vecmath.Vector2 `yaml:"vertices,omitempty"`

	Position        vecmath.Vector2 `yaml:"position"`
	Orient          float64         `yaml:"orient,omitempty"`
	Velocity        vecmath.Vector2 `yaml:"velocity,omitempty"`
	AngularVelocity float64         `yaml:"angular_velocity,omitempty"`

	Density           *float64 `yaml:"density,omitempty"`
	Restitution       *float64 `yaml:"restitution,omitempty"`
	StaticFriction    *float64 `yaml:"static_friction,omitempty"`
	DynamicFriction   *float64 `yaml:"dynamic_friction,omitempty"`
	LinearDamping     float64  `yaml:"linear_damping,omitempty"`
	AngularDamping    float64  `yaml:"angular_damping,omitempty"`
	AffectedByGravity *bool    `yaml:"affected_by_gravity,omitempty"`
}

func (c BodyConfig) Validate() error {
	if c.Density != nil && *c.Density < 0 {
		return fmt.Errorf("%w: density must not be negative", ErrInvalidScene)
	}
	for name, v := range map[string]*float64{
		"restitution":      c.Restitution,
		"static_friction":  c.StaticFriction,
		"dynamic_friction": c.DynamicFriction,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidScene, name)
		}
	}
	if c.LinearDamping < 0 || c.AngularDamping < 0 {
		return fmt.Errorf("%w: damping must not be negative", ErrInvalidScene)
	}
	_, err := c.shape()
	return err
}

func (c BodyConfig) shape() (geometry.Shape, error) {
	var (
		shape geometry.Shape
		err   error
	)
	switch c.Shape {
	case ShapeCircle:
		shape, err = geometry.NewCircle(c.Radius)
	case ShapeBox:
		shape, err = geometry.NewBox(c.Width/2, c.Height/2)
	case ShapeRegular:
		shape, err = geometry.NewRegularPolygon(c.Radius, c.Sides)
	case ShapePolygon:
		shape, err = geometry.NewPolygon(c.Vertices...)
	default:
		return geometry.Shape{}, fmt.Errorf("%w %q", ErrUnknownShape, c.Shape)
	}
	if err != nil {
		return geometry.Shape{}, fmt.Errorf("%s: %w", c.Shape, err)
	}
	return shape, nil
}

// Build creates the body described by c.
func (c BodyConfig) Build() (*dynamics.Body, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	shape, err := c.shape()
	if err != nil {
		return nil, err
	}

	density := 1.0
	if c.Density != nil {
		density = *c.Density
	}
	b := dynamics.NewBody(shape, c.Position, density)
	b.SetOrient(c.Orient)

	if !b.IsStatic() {
		b.Velocity = c.Velocity
		b.AngularVelocity = c.AngularVelocity
	}
	if c.Restitution != nil {
		b.Restitution = *c.Restitution
	}
	if c.StaticFriction != nil {
		b.StaticFriction = *c.StaticFriction
	}
	if c.DynamicFriction != nil {
		b.DynamicFriction = *c.DynamicFriction
	}
	if c.AffectedByGravity != nil {
		b.AffectedByGravity = *c.AffectedByGravity
	}
	b.LinearDamping = c.LinearDamping
	b.AngularDamping = c.AngularDamping
	return b, nil
}
