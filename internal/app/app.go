// Package app wires the window, input, camera and scene into the main
// frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/morphoid/internal/config"
	"github.com/Faultbox/morphoid/internal/engine/camera"
	"github.com/Faultbox/morphoid/internal/engine/capture"
	"github.com/Faultbox/morphoid/internal/engine/input"
	"github.com/Faultbox/morphoid/internal/engine/window"
	"github.com/Faultbox/morphoid/internal/logger"
	"github.com/Faultbox/morphoid/internal/scene"
)

const windowTitle = "Superellipsoid Morphing"

// Clip planes for the perspective projection.
const (
	nearPlane = 0.1
	farPlane  = 100.0
)

// App owns the window, the GL state and the scene, and runs the frame
// loop until quit.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.FlyCamera
	scene  *scene.Scene
	shots  *capture.Capture

	// Drawable size in pixels; differs from the window size on HiDPI.
	width, height int
}

// New creates the window and GL context, then builds the scene on it.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	a.input, err = input.New()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize input: %w", err)
	}

	a.camera = camera.NewFlyCamera(mgl32.Vec3{0, 0, 3})
	a.camera.Speed = cfg.Controls.MoveSpeed
	a.camera.Sensitivity = cfg.Controls.MouseSensitivity

	a.scene, err = scene.New(cfg)
	if err != nil {
		a.input.Release()
		a.window.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.shots = capture.New("screenshots", "morphoid")

	a.width, a.height = a.window.DrawableSize()
	gl.Viewport(0, 0, int32(a.width), int32(a.height))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	logger.Info("press E to summon superellipsoid")
	return a, nil
}

// Run starts the frame loop and blocks until quit.
func (a *App) Run() error {
	a.running = true

	start := time.Now()
	last := start
	frames := 0
	fpsTimer := start

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		t := float32(now.Sub(start).Seconds())

		st := a.input.Update()
		if st.Quit {
			a.running = false
			break
		}
		a.applyInput(st, dt)

		if err := a.scene.Update(t); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		a.render(t)

		if st.Screenshot {
			// Read the back buffer before the swap makes it visible.
			a.screenshot()
		}
		a.window.SwapBuffers()

		frames++
		if now.Sub(fpsTimer) >= time.Second {
			if a.cfg.Game.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s (%d fps)", windowTitle, frames))
			}
			logger.Debug("fps",
				zap.Int("frames", frames),
				zap.Int("instances", a.scene.InstanceCount()))
			frames = 0
			fpsTimer = now
		}
	}

	return nil
}

// applyInput feeds one frame of input into the camera and the scene.
func (a *App) applyInput(st input.State, dt float32) {
	if st.Resized {
		a.width, a.height = a.window.DrawableSize()
		gl.Viewport(0, 0, int32(a.width), int32(a.height))
		logger.Debug("viewport resized",
			zap.Int("width", a.width),
			zap.Int("height", a.height))
	}

	a.camera.HandleMovement(st.MoveForward, st.MoveRight, dt)
	// SDL reports Y motion downward; pitch grows upward.
	a.camera.HandleLook(st.MouseDX, -st.MouseDY)
	a.camera.HandleZoom(st.WheelY)

	a.scene.TrySpawn(st.Spawn, a.camera.Position, a.camera.Front)
}

// render clears and draws one frame at scene time t.
func (a *App) render(t float32) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if a.width == 0 || a.height == 0 {
		return
	}
	aspect := float32(a.width) / float32(a.height)
	projection := mgl32.Perspective(mgl32.DegToRad(a.camera.Zoom), aspect, nearPlane, farPlane)
	view := a.camera.ViewMatrix()

	a.scene.Render(view, projection, a.camera.Position, a.camera.Front, t)
}

// screenshot reads the framebuffer and saves it as a PNG.
func (a *App) screenshot() {
	pixels := make([]byte, a.width*a.height*4)
	gl.ReadPixels(0, 0, int32(a.width), int32(a.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := a.shots.SavePixels(pixels, a.width, a.height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close tears down the scene, input and window in reverse order of
// creation.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.input != nil {
		a.input.Release()
	}
	if a.window != nil {
		a.window.Close()
	}
}
