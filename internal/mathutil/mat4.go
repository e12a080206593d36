package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4×4 matrix stored column-major, the layout model transforms are
// uploaded in.
type Mat4 = mgl64.Mat4

func Mat4Identity() Mat4 {
	return mgl64.Ident4()
}

// Translate returns m × T(v).
func Translate(m Mat4, v Vec3) Mat4 {
	return m.Mul4(mgl64.Translate3D(v[0], v[1], v[2]))
}

// Rotate returns m × R(angle, axis). Angle in radians.
func Rotate(m Mat4, angle float64, axis Vec3) Mat4 {
	return m.Mul4(mgl64.HomogRotate3D(angle, axis.Normalize()))
}

// Scale returns m × S(v).
func Scale(m Mat4, v Vec3) Mat4 {
	return m.Mul4(mgl64.Scale3D(v[0], v[1], v[2]))
}

// Mat4FromSlice builds a matrix from 16 column-major values.
func Mat4FromSlice(vals []float64) (Mat4, bool) {
	var m Mat4
	if len(vals) != 16 {
		return m, false
	}
	copy(m[:], vals)
	return m, true
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func MulPoint(m Mat4, v Vec3) Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}

// IsAffine reports whether the bottom row is (0, 0, 0, 1).
func IsAffine(m Mat4) bool {
	const eps = 1e-9
	return abs(m[3]) < eps && abs(m[7]) < eps && abs(m[11]) < eps && abs(m[15]-1) < eps
}

// IsIdentity checks if the matrix is approximately identity.
func IsIdentity(m Mat4) bool {
	return m.ApproxEqualThreshold(mgl64.Ident4(), 1e-8)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
