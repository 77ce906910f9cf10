package main

import (
	"runtime"

	"hello-triangle/internal/app"
	"hello-triangle/internal/graphics/renderables/triangle"
	"hello-triangle/internal/graphics/renderer"
	"hello-triangle/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := glfw.Init(); err != nil {
		closer.Fatalln("Failed to initialize GLFW:", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := app.SetupWindow("hello-triangle")
	if err != nil {
		closer.Fatalln("Failed to create a window. Exiting:", err)
	}
	closer.Bind(window.Destroy)

	im := input.NewInputManager()
	im.SetKeyCallback(window)

	r, err := renderer.NewRenderer(triangle.NewTriangle())
	if err != nil {
		closer.Fatalln("Failed to initialize renderer:", err)
	}

	a := app.NewApp(window, im, r)
	// Bound cleanups run in reverse order: GPU objects, window, GLFW.
	closer.Bind(a.Dispose)

	a.Run()
	closer.Close()
}
