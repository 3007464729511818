package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func TestNewFlyCameraDefaults(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 3})

	if !vecNear(c.Position, mgl32.Vec3{0, 0, 3}) {
		t.Errorf("position = %v, want (0, 0, 3)", c.Position)
	}
	// Yaw -90 with zero pitch looks down negative Z.
	if !vecNear(c.Front, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("front = %v, want (0, 0, -1)", c.Front)
	}
	if !vecNear(c.Right, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("right = %v, want (1, 0, 0)", c.Right)
	}
	if !vecNear(c.Up, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("up = %v, want (0, 1, 0)", c.Up)
	}
	if c.Zoom != 45 {
		t.Errorf("zoom = %v, want 45", c.Zoom)
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{1, 2, 5})
	got := c.ViewMatrix()
	want := mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)

	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("view matrix = %v, want %v", got, want)
	}
}

func TestHandleMovementFollowsBasis(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 0})

	// One second forward at default speed moves 2.5 units along Front.
	c.HandleMovement(1, 0, 1)
	if !vecNear(c.Position, mgl32.Vec3{0, 0, -2.5}) {
		t.Errorf("after forward move: %v, want (0, 0, -2.5)", c.Position)
	}

	c = NewFlyCamera(mgl32.Vec3{0, 0, 0})
	c.HandleMovement(0, -1, 2)
	if !vecNear(c.Position, mgl32.Vec3{-5, 0, 0}) {
		t.Errorf("after strafe left: %v, want (-5, 0, 0)", c.Position)
	}
}

func TestHandleLookPitchClamp(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 0})

	c.HandleLook(0, 100000)
	if c.Pitch != 89 {
		t.Errorf("pitch = %v, want clamp at 89", c.Pitch)
	}
	c.HandleLook(0, -200000)
	if c.Pitch != -89 {
		t.Errorf("pitch = %v, want clamp at -89", c.Pitch)
	}

	// Basis stays orthonormal through extreme look input.
	if d := c.Front.Dot(c.Right); d > eps || d < -eps {
		t.Errorf("front.right = %v, want 0", d)
	}
	if d := c.Front.Dot(c.Up); d > eps || d < -eps {
		t.Errorf("front.up = %v, want 0", d)
	}
}

func TestHandleLookYaw(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 0})

	// 900 counts at 0.1 deg/count swings yaw by 90 degrees: -90 -> 0,
	// which faces positive X.
	c.HandleLook(900, 0)
	if !vecNear(c.Front, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("front after 90 degree yaw = %v, want (1, 0, 0)", c.Front)
	}
}

func TestHandleZoomClamp(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 0})

	c.HandleZoom(10)
	if c.Zoom != 35 {
		t.Errorf("zoom = %v, want 35", c.Zoom)
	}
	c.HandleZoom(1000)
	if c.Zoom != 1 {
		t.Errorf("zoom = %v, want clamp at 1", c.Zoom)
	}
	c.HandleZoom(-1000)
	if c.Zoom != 45 {
		t.Errorf("zoom = %v, want clamp at 45", c.Zoom)
	}
}
