package triangle

import (
	"fmt"

	"hello-triangle/internal/config"
	"hello-triangle/internal/graphics"
	"hello-triangle/internal/graphics/renderer"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPos;
void main() {
	gl_Position = vec4(aPos, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
uniform vec3 uColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(uColor, 1.0);
}
`

// Vertices holds the triangle corners in normalized device coordinates.
var Vertices = []float32{
	-0.5, -0.5, 0.0, // bottom left
	0.5, -0.5, 0.0, // bottom right
	0.0, 0.5, 0.0, // top
}

// Indices references Vertices as a single triangle.
var Indices = []uint32{0, 1, 2}

// Layout describes attribute 0 as three tightly packed floats per vertex.
var Layout = graphics.VertexLayout{Index: 0, Components: 3}

// Triangle renders the hard-coded triangle with a uniform fill color.
type Triangle struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
}

// NewTriangle creates the triangle renderable. GPU resources are allocated
// in Init, which needs a current context.
func NewTriangle() *Triangle {
	return &Triangle{}
}

// Init compiles the shader program and uploads the geometry
func (t *Triangle) Init() error {
	shader, err := graphics.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("triangle shader: %w", err)
	}
	t.shader = shader
	t.mesh = graphics.NewMesh(Vertices, Indices, Layout)
	return nil
}

// Render binds the program and issues the indexed draw call
func (t *Triangle) Render(ctx renderer.RenderContext) {
	t.shader.Use()
	c := config.GetTriangleColor()
	t.shader.SetVector3("uColor", c.X(), c.Y(), c.Z())
	t.mesh.Draw()
}

// SetViewport is a no-op; the geometry lives in normalized device
// coordinates and nothing here depends on the window size.
func (t *Triangle) SetViewport(width, height int) {}

// Dispose releases the mesh and the shader program
func (t *Triangle) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
		t.mesh = nil
	}
	if t.shader != nil {
		t.shader.Delete()
		t.shader = nil
	}
}
