package app

import (
	"fmt"

	"hello-triangle/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
)

// SetupWindow creates the GLFW window, makes its context current and loads
// the OpenGL function pointers. The viewport always spans the framebuffer,
// including after resizes.
func SetupWindow(title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(WindowWidth, WindowHeight, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	if config.GetVSync() {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window.SetIcon(BuildIcons())

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	installResizeHandler(window, gl.Viewport)

	return window, nil
}

type viewportFunc func(x, y, width, height int32)

func installResizeHandler(window *glfw.Window, apply viewportFunc) {
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		resizeViewport(apply, width, height)
	})
}

// resizeViewport re-applies the viewport across the full framebuffer
func resizeViewport(apply viewportFunc, width, height int) {
	apply(0, 0, int32(width), int32(height))
}
