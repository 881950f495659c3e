package vecmath

import "math"

// Mat2 is a 2x2 rotation matrix in row-major order.
type Mat2 struct {
	M00 float64
	M01 float64
	M10 float64
	M11 float64
}

var Identity = Mat2{M00: 1, M11: 1}

func Rotation(radians float64) Mat2 {
	c := math.Cos(radians)
	s := math.Sin(radians)
	return Mat2{M00: c, M01: -s, M10: s, M11: c}
}

// Set rewrites m in place as the rotation by radians.
func (m *Mat2) Set(radians float64) {
	c := math.Cos(radians)
	s := math.Sin(radians)
	m.M00 = c
	m.M01 = -s
	m.M10 = s
	m.M11 = c
}

// Transpose returns the transposed matrix. For a rotation it is the inverse.
func (m Mat2) Transpose() Mat2 {
	return Mat2{M00: m.M00, M01: m.M10, M10: m.M01, M11: m.M11}
}

func (m Mat2) MulVec(v Vector2) Vector2 {
	return Vector2{X: m.M00*v.X + m.M01*v.Y, Y: m.M10*v.X + m.M11*v.Y}
}

func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		M00: m.M00*o.M00 + m.M01*o.M10,
		M01: m.M00*o.M01 + m.M01*o.M11,
		M10: m.M10*o.M00 + m.M11*o.M10,
		M11: m.M10*o.M01 + m.M11*o.M11,
	}
}
