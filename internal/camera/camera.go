// Package camera is a free-moving look-at camera: rotate about the up axis,
// strafe, push in and pedestal, with a perspective projection.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"animscene/internal/mathutil"
)

// Movement step sizes per call with direction ±1.
const (
	RotateStep   = 0.05 // radians
	StrafeStep   = 0.01 // fraction of (up × look)
	PushStep     = 0.01 // fraction of the look vector
	PedestalStep = 0.25 // world units along up
)

// Defaults for a newly created camera.
var (
	DefaultPosition = mathutil.Vec3{-12, 0, 21}
	DefaultLookAt   = mathutil.Vec3{0, 0, 0}
	DefaultUp       = mathutil.Vec3{0, 1, 0}
)

const (
	DefaultFovY = 45.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Camera looks from Position towards LookAt. Position never drops below the
// ground plane y = 0 through Pedestal.
type Camera struct {
	Position mathutil.Vec3
	LookAt   mathutil.Vec3
	Up       mathutil.Vec3
	FovY     float64
	Near     float64
	Far      float64

	home, homeLookAt mathutil.Vec3
}

// NewDefault returns a camera at DefaultPosition looking at the origin.
func NewDefault() *Camera {
	return New(DefaultPosition, DefaultLookAt)
}

// New returns a camera at pos looking at target. Reset returns it here.
func New(pos, target mathutil.Vec3) *Camera {
	return &Camera{
		Position:   pos,
		LookAt:     target,
		Up:         DefaultUp,
		FovY:       DefaultFovY,
		Near:       DefaultNear,
		Far:        DefaultFar,
		home:       pos,
		homeLookAt: target,
	}
}

// Eye returns the camera position.
func (c *Camera) Eye() mathutil.Vec3 { return c.Position }

// View returns the world-to-camera matrix.
func (c *Camera) View() mathutil.Mat4 {
	return mgl64.LookAtV(c.Position, c.LookAt, mathutil.AxisY)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float64) mathutil.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// LookDirection is LookAt minus Position (not normalized).
func (c *Camera) LookDirection() mathutil.Vec3 {
	return c.LookAt.Sub(c.Position)
}

// Rotate turns the look direction about Up; direction 1 turns left.
func (c *Camera) Rotate(direction float64) {
	rot := mgl64.HomogRotate3D(RotateStep*direction, c.Up.Normalize())
	look := rot.Mul4x1(c.LookDirection().Vec4(0)).Vec3()
	c.LookAt = c.Position.Add(look)
}

// Strafe moves sideways along Up × look; direction 1 moves left.
func (c *Camera) Strafe(direction float64) {
	side := c.Up.Cross(c.LookDirection()).Mul(StrafeStep * direction)
	c.Position = c.Position.Add(side)
	c.LookAt = c.LookAt.Add(side)
}

// PushIn moves along the look direction; direction 1 moves forward.
func (c *Camera) PushIn(direction float64) {
	step := c.LookDirection().Mul(PushStep * direction)
	c.Position = c.Position.Add(step)
	c.LookAt = c.LookAt.Add(step)
}

// Pedestal moves along Up; direction 1 moves up. Reaching the ground plane
// flattens both the position and the look-at point onto it.
func (c *Camera) Pedestal(direction float64) {
	step := c.Up.Mul(PedestalStep * direction)
	c.Position = c.Position.Add(step)
	c.LookAt = c.LookAt.Add(step)
	if c.Position[1] <= 0 {
		c.Position[1] = 0
		c.LookAt[1] = 0
	}
}

// Reset returns the camera to where it was created.
func (c *Camera) Reset() {
	c.Position = c.home
	c.LookAt = c.homeLookAt
}
