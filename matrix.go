package raster2d

import "math"

// Matrix represents a 3x3 affine transformation matrix in row-major order,
// acting on the homogeneous column vector (x, y, 1). The third row is always
// logically (0, 0, 1) and is not stored:
//
//	| A  B  C |
//	| D  E  F |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The zero value of Matrix has every entry zero and is singular; use
// [Identity] for the identity transform.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, C: tx, E: 1, F: ty}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate creates a rotation matrix (angle in radians, clockwise in the
// default top-left-origin, y-down coordinate system).
func Rotate(angle float64) Matrix {
	sa := math.Sin(angle)
	ca := math.Cos(angle)
	return Matrix{
		A: ca, B: -sa,
		D: sa, E: ca,
	}
}

// HasSkew reports whether the matrix has a nonzero (0,1) or (1,0) entry.
// Context uses this to choose between the axis-aligned fast paths and the
// general affine paths for rectangle and bitmap drawing.
func (m Matrix) HasSkew() bool {
	return m.B != 0 || m.D != 0
}

// Multiply returns m post-multiplied by other: (m * other). When used as
// the new CTM, this applies other's transformation before m's, matching the
// usual "current * delta" convention for save/translate/scale/rotate.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// MultiplyVec3 multiplies the matrix by a homogeneous column vector, using
// the implicit third row (0, 0, 1).
func (m Matrix) MultiplyVec3(v Vec3) Vec3 {
	return Vec3{
		X: m.A*v.X + m.B*v.Y + m.C*v.Z,
		Y: m.D*v.X + m.E*v.Y + m.F*v.Z,
		Z: v.Z,
	}
}

// TransformPoint maps a point from the matrix's source space to its
// destination space.
func (m Matrix) TransformPoint(p Point) Point {
	return vec3ToPoint(m.MultiplyVec3(pointToVec3(p)))
}

// determinant returns the determinant of the full 3x3 matrix (with the
// implicit third row (0, 0, 1) substituted in), using the standard
// cofactor expansion.
func (m Matrix) determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert computes the inverse matrix using the adjugate-over-determinant
// formula. It reports false, with the returned matrix unspecified, when the
// determinant is zero (the matrix is singular and has no inverse).
func (m Matrix) Invert() (Matrix, bool) {
	det := m.determinant()
	if det == 0 {
		return Matrix{}, false
	}

	invDet := 1 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.E*m.C) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.D*m.C - m.A*m.F) * invDet,
	}, true
}
