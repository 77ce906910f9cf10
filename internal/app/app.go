package app

import (
	"fmt"
	"log"
	"time"

	"hello-triangle/internal/graphics/renderer"
	"hello-triangle/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// AppState tracks the lifecycle of the render loop
type AppState int

const (
	StateRunning AppState = iota
	StateClosing
	StateTerminated
)

// App drives the per-frame loop. All GPU resources are allocated before the
// loop starts and released exactly once in Dispose.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer

	state AppState

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	frames       int
	lastFPSCheck time.Time
}

func NewApp(window *glfw.Window, im *input.InputManager, r *renderer.Renderer) *App {
	if window != nil {
		window.SetSizeCallback(func(w *glfw.Window, width, height int) {
			r.UpdateViewport(width, height)
		})
	}
	return &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		state:        StateRunning,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
	}
}

// Run drives the loop until the window should close
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
	// The window system can request closure without an escape press
	if a.state == StateRunning {
		a.state = StateClosing
	}
}

func (a *App) tick() {
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	glfw.PollEvents()
	a.handleActions(a.window)

	a.renderer.Render(dt)
	a.window.SwapBuffers()

	a.frames++
	if time.Since(a.lastFPSCheck) >= time.Second {
		fmt.Println("FPS: ", a.frames)
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	// Check if frame took too long (> 16ms)
	if d := time.Since(start); d > 16*time.Millisecond {
		log.Printf("Slow frame: %v", d)
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait()
}

// closeTarget is the part of the window the input actions touch
type closeTarget interface {
	SetShouldClose(bool)
}

func (a *App) handleActions(w closeTarget) {
	if a.inputManager.JustPressed(input.ActionQuit) {
		w.SetShouldClose(true)
		a.state = StateClosing
	}
	if a.inputManager.JustPressed(input.ActionToggleWireframe) {
		a.renderer.ToggleWireframe()
	}
}

// Dispose releases all GPU resources owned by the renderer
func (a *App) Dispose() {
	a.renderer.Dispose()
	a.state = StateTerminated
}

// State returns the current lifecycle state
func (a *App) State() AppState {
	return a.state
}
