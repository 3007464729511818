// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FlyCamera is a free-look camera driven by keyboard movement and mouse
// deltas. Orientation is stored as yaw/pitch in degrees; the derived
// basis vectors are kept in sync by the Handle* methods.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles, degrees
	Yaw   float32
	Pitch float32

	// Tuning
	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse count
	Zoom        float32 // vertical field of view, degrees
}

// NewFlyCamera creates a fly camera at the given position, looking down
// the negative Z axis.
func NewFlyCamera(position mgl32.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90.0,
		Pitch:       0.0,
		Speed:       2.5,
		Sensitivity: 0.1,
		Zoom:        45.0,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// HandleMovement translates the camera along its front and right
// vectors. forward and right are -1..1 axis values from held keys; dt
// is the frame delta in seconds.
func (c *FlyCamera) HandleMovement(forward, right, dt float32) {
	velocity := c.Speed * dt
	c.Position = c.Position.Add(c.Front.Mul(forward * velocity))
	c.Position = c.Position.Add(c.Right.Mul(right * velocity))
}

// HandleLook rotates the camera from mouse deltas. dx is positive when
// looking right, dy positive when looking up. Pitch is clamped so the
// view never flips over the poles.
func (c *FlyCamera) HandleLook(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}

	c.updateVectors()
}

// HandleZoom narrows or widens the field of view from scroll wheel
// input, clamped to [1, 45] degrees.
func (c *FlyCamera) HandleZoom(dy float32) {
	c.Zoom -= dy
	if c.Zoom < 1.0 {
		c.Zoom = 1.0
	}
	if c.Zoom > 45.0 {
		c.Zoom = 45.0
	}
}

// updateVectors recomputes the orthonormal basis from yaw and pitch.
func (c *FlyCamera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
