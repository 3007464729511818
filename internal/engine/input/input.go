// Package input handles SDL2 input events.
package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// State is the per-frame input snapshot the frame driver consumes.
// Mouse and wheel deltas accumulate over the frame's events; movement
// axes are sampled from held keys.
type State struct {
	Quit bool

	Resized bool
	Width   int
	Height  int

	// Relative mouse deltas, SDL convention: Y grows downward.
	MouseDX float32
	MouseDY float32
	WheelY  float32

	MoveForward float32 // -1..1 from W/S
	MoveRight   float32 // -1..1 from A/D
	Spawn       bool    // E held
	Screenshot  bool    // F12 pressed this frame
}

// Input polls SDL events into per-frame snapshots.
type Input struct{}

// New creates the input handler and captures the mouse for relative
// look input.
func New() (*Input, error) {
	if rc := sdl.SetRelativeMouseMode(true); rc != 0 {
		return nil, fmt.Errorf("relative mouse mode: SDL error %d", rc)
	}
	return &Input{}, nil
}

// Update pumps pending SDL events and returns this frame's snapshot.
func (i *Input) Update() State {
	var s State

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.Resized = true
				s.Width = int(e.Data1)
				s.Height = int(e.Data2)
			}

		case *sdl.MouseMotionEvent:
			s.MouseDX += float32(e.XRel)
			s.MouseDY += float32(e.YRel)

		case *sdl.MouseWheelEvent:
			s.WheelY += float32(e.Y)

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					s.Quit = true
				case sdl.K_F12:
					s.Screenshot = true
				}
			}
		}
	}

	// Held keys come from the keyboard state array, not key events, so
	// movement stays smooth regardless of OS key repeat.
	keys := sdl.GetKeyboardState()
	if keys[sdl.SCANCODE_W] != 0 {
		s.MoveForward += 1
	}
	if keys[sdl.SCANCODE_S] != 0 {
		s.MoveForward -= 1
	}
	if keys[sdl.SCANCODE_D] != 0 {
		s.MoveRight += 1
	}
	if keys[sdl.SCANCODE_A] != 0 {
		s.MoveRight -= 1
	}
	s.Spawn = keys[sdl.SCANCODE_E] != 0

	return s
}

// Release lets go of the relative mouse capture, used during teardown.
func (i *Input) Release() {
	_ = sdl.SetRelativeMouseMode(false)
}
