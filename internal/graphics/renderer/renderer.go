package renderer

import (
	"hello-triangle/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	wireframe   bool
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	renderer := &Renderer{renderables: rs}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render clears the framebuffer and draws all renderables
func (r *Renderer) Render(dt float64) {
	c := config.GetClearColor()
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	mode := uint32(gl.FILL)
	if r.wireframe {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)

	ctx := RenderContext{DT: dt, Wireframe: r.wireframe}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// ToggleWireframe switches between filled and wireframe polygon modes
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
}

// Wireframe reports whether wireframe mode is active
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// UpdateViewport forwards the new window size to all renderables
func (r *Renderer) UpdateViewport(width, height int) {
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose releases all renderables. GPU objects are deleted exactly once.
func (r *Renderer) Dispose() {
	for _, renderable := range r.renderables {
		renderable.Dispose()
	}
	r.renderables = nil
}
