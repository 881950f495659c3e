// Package vecmath holds the 2D vector and rotation matrix primitives used by
// the engine.
//
// Vector2 methods with a value receiver never touch the receiver and return a
// fresh value. Methods with a pointer receiver (Set, Normalize, Negate and the
// *Assign family) mutate the receiver in place. Collision code relies on this
// split, so keep new methods on the correct side of it.
package vecmath

import "math"

type Vector2 struct {
	X float64
	Y float64
}

var (
	Zero  = Vector2{}
	Up    = Vector2{X: 0, Y: 1}
	Down  = Vector2{X: 0, Y: -1}
	Left  = Vector2{X: -1, Y: 0}
	Right = Vector2{X: 1, Y: 0}
)

func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at radians.
func FromAngle(radians float64) Vector2 {
	return Vector2{X: math.Cos(radians), Y: math.Sin(radians)}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Normal returns v rotated 90 degrees counter-clockwise.
func (v Vector2) Normal() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Normalized returns a unit copy of v. The zero vector stays zero.
func (v Vector2) Normalized() Vector2 {
	d := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if d == 0 {
		d = 1
	}
	return Vector2{X: v.X / d, Y: v.Y / d}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross is the z component of the 3D cross product of v and o.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// CrossScalar returns v x s, the vector crossed with a scalar out of the plane.
func (v Vector2) CrossScalar(s float64) Vector2 {
	return CrossVS(v, s)
}

func (v Vector2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Distance(o Vector2) float64 {
	return math.Sqrt(v.DistanceSqr(o))
}

func (v Vector2) DistanceSqr(o Vector2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

func (v Vector2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Set overwrites v with o and returns v for chaining.
func (v *Vector2) Set(o Vector2) *Vector2 {
	v.X = o.X
	v.Y = o.Y
	return v
}

// Normalize scales v to unit length in place. The zero vector stays zero.
func (v *Vector2) Normalize() *Vector2 {
	d := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if d == 0 {
		d = 1
	}
	v.X /= d
	v.Y /= d
	return v
}

func (v *Vector2) Negate() *Vector2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

func (v *Vector2) AddAssign(o Vector2) *Vector2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vector2) SubAssign(o Vector2) *Vector2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vector2) ScaleAssign(s float64) *Vector2 {
	v.X *= s
	v.Y *= s
	return v
}

// CrossSV returns s x v: v rotated counter-clockwise and scaled by s.
func CrossSV(s float64, v Vector2) Vector2 {
	return Vector2{X: -s * v.Y, Y: s * v.X}
}

// CrossVS returns v x s: v rotated clockwise and scaled by s.
func CrossVS(v Vector2, s float64) Vector2 {
	return Vector2{X: s * v.Y, Y: -s * v.X}
}
