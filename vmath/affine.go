package vmath

import "math"

// singularEps bounds the determinant below which an affine is not invertible
const singularEps = 1e-12

// Affine is a 2D affine transform stored row-major as
//
//	| A B C |
//	| D E F |
//
// mapping (x, y) to (A*x + B*y + C, D*x + E*y + F)
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a pure translation
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, C: tx, E: 1, F: ty}
}

// Rotate returns a counter-clockwise rotation by theta radians
func Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{A: cos, B: -sin, D: sin, E: cos}
}

// ScaleXY returns an axis-aligned scale
func ScaleXY(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// TRS composes translation, rotation and scale, applied scale first
func TRS(pos Vec2, theta float64, scale Vec2) Affine {
	return Translate(pos.X, pos.Y).Mul(Rotate(theta)).Mul(ScaleXY(scale.X, scale.Y))
}

// Mul returns m∘n: n is applied first, then m
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Apply maps a point through the transform
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Translation returns the image of the local origin
func (m Affine) Translation() Vec2 {
	return Vec2{m.C, m.F}
}

// Det returns the determinant of the linear part
func (m Affine) Det() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform, false when singular
func (m Affine) Invert() (Affine, bool) {
	det := m.Det()
	if math.Abs(det) < singularEps {
		return Affine{}, false
	}
	inv := 1.0 / det
	a := m.E * inv
	b := -m.B * inv
	d := -m.D * inv
	e := m.A * inv
	return Affine{
		A: a,
		B: b,
		C: -(a*m.C + b*m.F),
		D: d,
		E: e,
		F: -(d*m.C + e*m.F),
	}, true
}
