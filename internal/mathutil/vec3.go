package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 = mgl64.Vec3

var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

// Vec3FromSlice returns the vector held in vals, or false unless len(vals) == 3.
func Vec3FromSlice(vals []float64) (Vec3, bool) {
	if len(vals) != 3 {
		return Vec3{}, false
	}
	return Vec3{vals[0], vals[1], vals[2]}, true
}

// Centroid returns the mean of a flat xyz vertex array.
// Trailing components that do not form a full vertex are ignored.
func Centroid(verts []float32) Vec3 {
	n := len(verts) / 3
	if n == 0 {
		return Vec3{}
	}
	var sum Vec3
	for i := 0; i < n; i++ {
		sum[0] += float64(verts[i*3])
		sum[1] += float64(verts[i*3+1])
		sum[2] += float64(verts[i*3+2])
	}
	return sum.Mul(1 / float64(n))
}
