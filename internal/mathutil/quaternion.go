package mathutil

import "github.com/go-gl/mathgl/mgl64"

// PoseMatrix builds a bone-style local transform: T(position) × R(euler),
// with the Euler angles (radians) applied in X, Y, Z order.
func PoseMatrix(position, euler Vec3) Mat4 {
	q := mgl64.AnglesToQuat(euler[0], euler[1], euler[2], mgl64.XYZ)
	return mgl64.Translate3D(position[0], position[1], position[2]).Mul4(q.Mat4())
}
