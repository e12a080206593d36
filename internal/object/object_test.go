package object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"animscene/internal/clock"
	"animscene/internal/mathutil"
	"animscene/internal/transform"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNewIdentity(t *testing.T) {
	o := New("crate")
	if !mathutil.IsIdentity(o.Model()) {
		t.Errorf("model = %v, want identity", o.Model())
	}
	if len(o.Records()) != 0 {
		t.Error("new object should have no records")
	}
}

func TestPlacementHelpers(t *testing.T) {
	o := New("plane")
	o.Translate(mathutil.Vec3{-2, 6, -8})
	o.Rotate(mathutil.Vec3{0, 0.5, 0})
	o.Scale(mathutil.Vec3{0.1, 0.1, 0.1})

	want := mgl64.Translate3D(-2, 6, -8).
		Mul4(mgl64.HomogRotate3DX(0)).
		Mul4(mgl64.HomogRotate3DY(0.5)).
		Mul4(mgl64.HomogRotate3DZ(0)).
		Mul4(mgl64.Scale3D(0.1, 0.1, 0.1))
	if !o.Model().ApproxEqualThreshold(want, epsilon) {
		t.Errorf("model = %v, want %v", o.Model(), want)
	}

	o.ResetModel()
	if !mathutil.IsIdentity(o.Model()) {
		t.Error("ResetModel should restore identity")
	}
}

func TestAnimateTranslationPingPong(t *testing.T) {
	c, err := clock.NewWithTarget(10, 5)
	if err != nil {
		t.Fatal(err)
	}
	o := New("crate")
	rec := transform.Translate(mathutil.Vec3{0.01, 0, 0})
	o.AddRecord(rec)

	frame := func() {
		if failures := o.Animate(c, nil); len(failures) != 0 {
			t.Fatalf("unexpected failures: %v", failures)
		}
		c.Advance()
	}

	for i := 0; i < 5; i++ {
		frame()
	}
	assertNear(t, "x after 5 ticks", o.Model().At(0, 3), 0.05)
	assertNear(t, "value before flip", rec.Value[0], 0.01)

	frame()
	assertNear(t, "value after flip", rec.Value[0], -0.01)
	assertNear(t, "x after 6 ticks", o.Model().At(0, 3), 0.04)

	for i := 0; i < 4; i++ {
		frame()
	}
	if c.Tick() != 10 {
		t.Fatalf("tick = %d, want 10", c.Tick())
	}
	assertNear(t, "x after 10 ticks", o.Model().At(0, 3), 0)
}

func TestAnimateScalingFullCycleRestoresValue(t *testing.T) {
	c, _ := clock.New(8)
	o := New("flag")
	rec := transform.Scale(mathutil.Vec3{1.02, 1, 1})
	o.AddRecord(rec)

	for i := 0; i < 16; i++ {
		o.Animate(c, nil)
		c.Advance()
		if i == 4 {
			assertNear(t, "reflected", rec.Value[0], 0.98)
		}
	}
	assertNear(t, "restored", rec.Value[0], 1.02)
}

func TestAnimateRotationNotReversed(t *testing.T) {
	c, _ := clock.NewWithTarget(4, 0)
	o := New("propeller")
	rec := transform.Rotate(mathutil.Vec3{0, 0, 0.1})
	o.AddRecord(rec)
	o.Animate(c, nil)
	assertNear(t, "angle", rec.Value[2], 0.1)
}

func TestAnimateSkipsMalformedRecord(t *testing.T) {
	c, _ := clock.New(10)
	o := New("bone")
	bad := &transform.Record{Kind: transform.KindRawMatrix, Value: make([]float64, 15)}
	o.AddRecord(bad, transform.Translate(mathutil.Vec3{1, 0, 0}))

	failures := o.Animate(c, nil)
	if len(failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(failures))
	}
	if failures[0].Index != 0 || !transform.IsMalformed(failures[0].Err) {
		t.Errorf("failure = %+v", failures[0])
	}
	assertNear(t, "later record applied", o.Model().At(0, 3), 1)
}

func TestAnimateMalformedOnlyLeavesModelUnchanged(t *testing.T) {
	c, _ := clock.New(10)
	o := New("bone")
	o.Translate(mathutil.Vec3{3, 0, 0})
	before := o.Model()
	o.AddRecord(&transform.Record{Kind: transform.KindRawMatrix, Value: make([]float64, 15)})

	o.Animate(c, nil)
	if o.Model() != before {
		t.Error("malformed record mutated the model transform")
	}
}

func TestAnimateReversesSharedRecordOncePerFrame(t *testing.T) {
	c, _ := clock.NewWithTarget(4, 0)
	rec := transform.Translate(mathutil.Vec3{0.5, 0, 0})
	a, b := New("left"), New("right")
	a.AddRecord(rec)
	b.AddRecord(rec)

	reversed := make(map[*transform.Record]struct{})
	a.Animate(c, reversed)
	b.Animate(c, reversed)
	assertNear(t, "record", rec.Value[0], -0.5)
	assertNear(t, "left x", a.Model().At(0, 3), -0.5)
	assertNear(t, "right x", b.Model().At(0, 3), -0.5)
	if len(reversed) != 1 {
		t.Errorf("reversed set = %d records, want 1", len(reversed))
	}
}
