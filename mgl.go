package curve3d

import "github.com/go-gl/mathgl/mgl32"

// Conversions to and from go-gl/mathgl, the vector library most Go 3D
// engines expose. mgl32 matrices are column-major; Matrix3 is row-major.

// FromMgl converts an mgl32 vector to a Vec3.
func FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Mgl converts the vector to mgl32.
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Matrix3FromMgl converts a column-major mgl32 matrix, such as the result
// of mgl32.Rotate3DY or Quat.Mat4().Mat3(), to a Matrix3.
func Matrix3FromMgl(m mgl32.Mat3) Matrix3 {
	return Matrix3{
		M00: m[0], M01: m[3], M02: m[6],
		M10: m[1], M11: m[4], M12: m[7],
		M20: m[2], M21: m[5], M22: m[8],
	}
}

// Mgl converts the matrix to a column-major mgl32 matrix.
func (m Matrix3) Mgl() mgl32.Mat3 {
	return mgl32.Mat3{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}
