package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"animscene/internal/mathutil"
)

const epsilon = 1e-9

func assertVec(t *testing.T, name string, got, want mathutil.Vec3) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestDefaults(t *testing.T) {
	c := NewDefault()
	assertVec(t, "position", c.Eye(), mathutil.Vec3{-12, 0, 21})
	assertVec(t, "lookAt", c.LookAt, mathutil.Vec3{})

	want := mgl64.LookAtV(mathutil.Vec3{-12, 0, 21}, mathutil.Vec3{}, mathutil.Vec3{0, 1, 0})
	if !c.View().ApproxEqualThreshold(want, epsilon) {
		t.Errorf("view = %v, want %v", c.View(), want)
	}

	p := c.Projection(1.5)
	wantP := mgl64.Perspective(math.Pi/4, 1.5, 0.1, 100)
	if !p.ApproxEqualThreshold(wantP, epsilon) {
		t.Errorf("projection = %v, want %v", p, wantP)
	}
}

func TestViewMapsLookAtOntoAxis(t *testing.T) {
	c := NewDefault()
	p := mathutil.MulPoint(c.View(), c.LookAt)
	if math.Abs(p[0]) > epsilon || math.Abs(p[1]) > epsilon || p[2] >= 0 {
		t.Errorf("look-at in view space = %v, want on -Z", p)
	}
}

func TestRotateKeepsPositionAndDistance(t *testing.T) {
	c := NewDefault()
	dist := c.LookDirection().Len()
	c.Rotate(1)
	assertVec(t, "position", c.Position, DefaultPosition)
	if math.Abs(c.LookDirection().Len()-dist) > 1e-9 {
		t.Errorf("look distance = %v, want %v", c.LookDirection().Len(), dist)
	}
	if math.Abs(c.LookAt[1]) > epsilon {
		t.Errorf("rotation about up changed height: %v", c.LookAt)
	}

	c.Rotate(-1)
	assertVec(t, "lookAt after undo", c.LookAt, DefaultLookAt)
}

func TestStrafe(t *testing.T) {
	c := NewDefault()
	look := c.LookDirection()
	side := mathutil.Vec3{0, 1, 0}.Cross(look).Mul(StrafeStep)
	c.Strafe(1)
	assertVec(t, "position", c.Position, DefaultPosition.Add(side))
	assertVec(t, "lookAt", c.LookAt, DefaultLookAt.Add(side))
	assertVec(t, "look unchanged", c.LookDirection(), look)
}

func TestPushIn(t *testing.T) {
	c := NewDefault()
	look := c.LookDirection()
	c.PushIn(1)
	assertVec(t, "position", c.Position, DefaultPosition.Add(look.Mul(PushStep)))
	c.PushIn(-1)
	assertVec(t, "position back", c.Position, DefaultPosition)
}

func TestPedestalClampsAtGround(t *testing.T) {
	c := New(mathutil.Vec3{0, 0.3, 5}, mathutil.Vec3{0, 0.3, 0})
	c.Pedestal(1)
	assertVec(t, "up", c.Position, mathutil.Vec3{0, 0.55, 5})

	c.Pedestal(-1)
	c.Pedestal(-1)
	c.Pedestal(-1)
	if c.Position[1] != 0 || c.LookAt[1] != 0 {
		t.Errorf("below ground: position %v lookAt %v", c.Position, c.LookAt)
	}
}

func TestResetAndBindings(t *testing.T) {
	c := NewDefault()
	for _, key := range []string{"J", "A", "W", "I", "L", "D"} {
		a, ok := DefaultBindings[key]
		if !ok {
			t.Fatalf("no binding for %s", key)
		}
		c.Do(a)
	}
	if c.Position.ApproxEqualThreshold(DefaultPosition, epsilon) {
		t.Fatal("movement had no effect")
	}
	c.Do(DefaultBindings["Space"])
	assertVec(t, "position", c.Position, DefaultPosition)
	assertVec(t, "lookAt", c.LookAt, DefaultLookAt)
}

func TestActionString(t *testing.T) {
	if PedestalDown.String() != "pedestal-down" {
		t.Errorf("String = %q", PedestalDown.String())
	}
	if Action(200).String() != "Action(200)" {
		t.Errorf("unknown String = %q", Action(200).String())
	}
}
