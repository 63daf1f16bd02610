package graphics

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transform stored row-major as
// [a b c; d e f], mapping (x, y) to (a*x + b*y + c, d*x + e*y + f).
type Matrix f64.Aff3

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0}
}

// TranslateMatrix returns a translation by (dx, dy).
func TranslateMatrix(dx, dy float64) Matrix {
	return Matrix{1, 0, dx, 0, 1, dy}
}

// ScaleMatrix returns a scale by (sx, sy) about the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0}
}

// RotateMatrix returns a rotation by radians about the origin.
func RotateMatrix(radians float64) Matrix {
	s, c := math.Sincos(radians)
	return Matrix{c, -s, 0, s, c, 0}
}

// Concat returns m applied after other.
func (m Matrix) Concat(other Matrix) Matrix {
	a, b := f64.Aff3(m), f64.Aff3(other)
	var out f64.Aff3
	for row := 0; row < 2; row++ {
		r := a[row*3 : row*3+3]
		out[row*3+0] = r[0]*b[0] + r[1]*b[3]
		out[row*3+1] = r[0]*b[1] + r[1]*b[4]
		out[row*3+2] = r[0]*b[2] + r[1]*b[5] + r[2]
	}
	return Matrix(out)
}

// Apply transforms a point.
func (m Matrix) Apply(p Offset) Offset {
	v := m.apply(f64.Vec2{p.X, p.Y})
	return Offset{X: v[0], Y: v[1]}
}

func (m Matrix) apply(v f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*v[0] + m[1]*v[1] + m[2],
		m[3]*v[0] + m[4]*v[1] + m[5],
	}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix()
}
