// Package app wires the window, GPU backend, renderer and viewer state into
// the frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/assets"
	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/debug"
	"github.com/Faultbox/sceneview/internal/engine/gpu"
	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/internal/engine/renderer"
	"github.com/Faultbox/sceneview/internal/engine/shader"
	"github.com/Faultbox/sceneview/internal/engine/window"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/viewer"
)

// KeyScreenshot saves the current frame.
const KeyScreenshot = "F12"

// App is the running viewer.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	backend  *gpu.GL
	renderer *renderer.Renderer
	input    *input.Input
	state    *viewer.State
	shots    *debug.ScreenshotCapture
}

// New opens the window, builds the shader program, loads the assets and
// uploads the scene. Shader failures are returned; asset failures are not.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		cfg:   cfg,
		input: input.New(),
		shots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "sceneview", cfg.Debug.ScreenshotFormat),
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL backend AFTER window, since the OpenGL context must exist
	a.backend, err = gpu.NewGL()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create GPU backend: %w", err)
	}

	program, err := shader.Phong(a.backend)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build shader program: %w", err)
	}
	a.renderer = renderer.New(a.backend, program)
	a.renderer.Resize(a.window.DrawableSize())

	loader := assets.NewLoader(cfg.Assets.Timeout)
	a.state = LoadState(context.Background(), cfg, loader)
	a.renderer.Upload(a.state.Scene.Buffers())

	logger.Info("viewer initialized successfully")
	return a, nil
}

// Run starts the frame loop. It returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")
	a.updateTitle()

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input; each key is applied whole before the next frame
		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		// 2. Render
		a.renderer.Frame(a.state.Scene, a.state.Camera, a.state.Light)

		// 3. Present (vsync paces the loop)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := a.renderer.Stats()
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("draws", stats.Draws),
				zap.Int("triangles", stats.Triangles),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		a.renderer.Resize(a.window.DrawableSize())
	case input.EventKeyDown:
		if ev.Key == KeyScreenshot {
			a.screenshot()
			return
		}
		if a.state.HandleKey(ev.Key) {
			a.updateTitle()
		}
	case input.EventMouseDown:
		if ev.Button != sdl.BUTTON_LEFT {
			return
		}
		w, h := a.window.GetSize()
		if a.state.Pick(float64(ev.MouseX), float64(ev.MouseY), w, h) {
			a.updateTitle()
		}
	}
}

func (a *App) screenshot() {
	// Redraw into the back buffer so the capture matches the current state.
	a.renderer.Frame(a.state.Scene, a.state.Camera, a.state.Light)
	w, h := a.window.DrawableSize()
	name, err := a.shots.Capture(a.backend, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (a *App) updateTitle() {
	if !a.cfg.Debug.ShowCoords {
		return
	}
	a.window.SetTitle(Title(a.cfg.Window.Title, a.state))
}

// Title is the window title showing the live camera and light.
func Title(base string, st *viewer.State) string {
	return base + " | " + st.Describe()
}

// Close releases GPU and window resources.
func (a *App) Close() {
	logger.Info("closing viewer")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.backend != nil {
		a.backend.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
