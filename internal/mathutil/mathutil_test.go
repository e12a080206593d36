package mathutil

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestTranslateRightMultiplies(t *testing.T) {
	m := Scale(Mat4Identity(), Vec3{2, 2, 2})
	m = Translate(m, Vec3{1, 0, 0})
	// The translation is expressed in the scaled frame.
	p := MulPoint(m, Vec3{})
	assertNear(t, "x", p[0], 2)
	assertNear(t, "y", p[1], 0)
	assertNear(t, "z", p[2], 0)
}

func TestRotateAboutY(t *testing.T) {
	m := Rotate(Mat4Identity(), math.Pi/2, AxisY)
	p := MulPoint(m, Vec3{1, 0, 0})
	assertNear(t, "x", p[0], 0)
	assertNear(t, "z", p[2], -1)
}

func TestMat4FromSlice(t *testing.T) {
	if _, ok := Mat4FromSlice(make([]float64, 15)); ok {
		t.Error("15 values should be rejected")
	}
	vals := make([]float64, 16)
	for i := range vals {
		vals[i] = float64(i)
	}
	m, ok := Mat4FromSlice(vals)
	if !ok {
		t.Fatal("16 values should be accepted")
	}
	// Column-major: element 12 is the x translation.
	assertNear(t, "col3row0", m.At(0, 3), 12)
}

func TestIsAffine(t *testing.T) {
	if !IsAffine(Translate(Mat4Identity(), Vec3{1, 2, 3})) {
		t.Error("translation should be affine")
	}
	m := Mat4Identity()
	m[3] = 0.5
	if IsAffine(m) {
		t.Error("projective row should not be affine")
	}
}

func TestIsIdentity(t *testing.T) {
	if !IsIdentity(Mat4Identity()) {
		t.Error("identity not detected")
	}
	if IsIdentity(Scale(Mat4Identity(), Vec3{1, 1, 1.1})) {
		t.Error("scale reported as identity")
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid([]float32{0, 0, 0, 2, 4, 6, 99})
	assertNear(t, "x", c[0], 1)
	assertNear(t, "y", c[1], 2)
	assertNear(t, "z", c[2], 3)

	if Centroid(nil) != (Vec3{}) {
		t.Error("empty centroid should be zero")
	}
}

func TestAxisRotation(t *testing.T) {
	m, err := AxisRotation('z', 90)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "m[1]", m[1], -1)
	assertNear(t, "m[4]", m[4], 1)

	if _, err := AxisRotation('w', 1); err == nil {
		t.Error("expected error for invalid axis")
	}
}

func TestTranspose16MatchesMgl(t *testing.T) {
	rows, err := AxisRotation('y', 30)
	if err != nil {
		t.Fatal(err)
	}
	cols := Mat4(Transpose16(rows))
	want := Rotate(Mat4Identity(), Deg2Rad(30), AxisY)
	if !cols.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("column-major = %v, want %v", cols, want)
	}
	if Transpose16(Transpose16(rows)) != rows {
		t.Error("transpose twice should be identity")
	}
}

func TestPoseMatrix(t *testing.T) {
	m := PoseMatrix(Vec3{1, 2, 3}, Vec3{0, 0, math.Pi / 2})
	p := MulPoint(m, Vec3{1, 0, 0})
	assertNear(t, "x", p[0], 1)
	assertNear(t, "y", p[1], 3)
	assertNear(t, "z", p[2], 3)
}
