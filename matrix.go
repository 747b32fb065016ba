package curve3d

import "github.com/chewxy/math32"

// Matrix3 represents a 3D linear transformation in row-major order:
//
//	| M00  M01  M02 |
//	| M10  M11  M12 |
//	| M20  M21  M22 |
//
// This represents the transformation:
//
//	x' = M00*x + M01*y + M02*z
//	y' = M10*x + M11*y + M12*z
//	z' = M20*x + M21*y + M22*z
//
// There is no translation component; use Segment.Translate for that.
type Matrix3 struct {
	M00, M01, M02 float32
	M10, M11, M12 float32
	M20, M21, M22 float32
}

// Identity3 returns the identity transformation matrix.
func Identity3() Matrix3 {
	return Matrix3{
		M00: 1,
		M11: 1,
		M22: 1,
	}
}

// Scale3 creates a scaling matrix.
func Scale3(x, y, z float32) Matrix3 {
	return Matrix3{
		M00: x,
		M11: y,
		M22: z,
	}
}

// RotateX creates a rotation about the X axis (angle in radians).
func RotateX(angle float32) Matrix3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Matrix3{
		M00: 1, M01: 0, M02: 0,
		M10: 0, M11: c, M12: -s,
		M20: 0, M21: s, M22: c,
	}
}

// RotateY creates a rotation about the Y axis (angle in radians).
func RotateY(angle float32) Matrix3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Matrix3{
		M00: c, M01: 0, M02: s,
		M10: 0, M11: 1, M12: 0,
		M20: -s, M21: 0, M22: c,
	}
}

// RotateZ creates a rotation about the Z axis (angle in radians).
func RotateZ(angle float32) Matrix3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Matrix3{
		M00: c, M01: -s, M02: 0,
		M10: s, M11: c, M12: 0,
		M20: 0, M21: 0, M22: 1,
	}
}

// RotateAxis creates a rotation of angle radians about an arbitrary axis
// (Rodrigues' formula). The axis does not need to be normalized.
// Returns the identity matrix if the axis has zero length.
func RotateAxis(axis Vec3, angle float32) Matrix3 {
	n := axis.Normalize()
	if n.IsZero() {
		return Identity3()
	}

	s, c := math32.Sin(angle), math32.Cos(angle)
	k := 1 - c
	x, y, z := n.X, n.Y, n.Z

	return Matrix3{
		M00: c + x*x*k, M01: x*y*k - z*s, M02: x*z*k + y*s,
		M10: y*x*k + z*s, M11: c + y*y*k, M12: y*z*k - x*s,
		M20: z*x*k - y*s, M21: z*y*k + x*s, M22: c + z*z*k,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix3) Multiply(other Matrix3) Matrix3 {
	return Matrix3{
		M00: m.M00*other.M00 + m.M01*other.M10 + m.M02*other.M20,
		M01: m.M00*other.M01 + m.M01*other.M11 + m.M02*other.M21,
		M02: m.M00*other.M02 + m.M01*other.M12 + m.M02*other.M22,

		M10: m.M10*other.M00 + m.M11*other.M10 + m.M12*other.M20,
		M11: m.M10*other.M01 + m.M11*other.M11 + m.M12*other.M21,
		M12: m.M10*other.M02 + m.M11*other.M12 + m.M12*other.M22,

		M20: m.M20*other.M00 + m.M21*other.M10 + m.M22*other.M20,
		M21: m.M20*other.M01 + m.M21*other.M11 + m.M22*other.M21,
		M22: m.M20*other.M02 + m.M21*other.M12 + m.M22*other.M22,
	}
}

// TransformVec applies the transformation to a vector.
func (m Matrix3) TransformVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// Transpose returns the transposed matrix. For a rotation this is its inverse.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		M00: m.M00, M01: m.M10, M02: m.M20,
		M10: m.M01, M11: m.M11, M12: m.M21,
		M20: m.M02, M21: m.M12, M22: m.M22,
	}
}

// Determinant returns the determinant of the matrix.
func (m Matrix3) Determinant() float32 {
	return m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix3) IsIdentity() bool {
	return m == Identity3()
}

// IsRotation reports whether the matrix is a proper rotation within
// epsilon: its columns are orthonormal and the determinant is +1.
// Rotations preserve lengths, so a cached arc length stays valid.
func (m Matrix3) IsRotation(epsilon float32) bool {
	p := m.Transpose().Multiply(m)
	id := Identity3()
	diffs := [9]float32{
		p.M00 - id.M00, p.M01 - id.M01, p.M02 - id.M02,
		p.M10 - id.M10, p.M11 - id.M11, p.M12 - id.M12,
		p.M20 - id.M20, p.M21 - id.M21, p.M22 - id.M22,
	}
	for _, d := range diffs {
		if math32.Abs(d) > epsilon {
			return false
		}
	}
	return math32.Abs(m.Determinant()-1) <= epsilon
}
