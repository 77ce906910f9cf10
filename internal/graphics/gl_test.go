package graphics_test

import (
	"runtime"
	"strings"
	"testing"

	"hello-triangle/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// These tests need a real OpenGL context. They create a hidden window and
// skip when no display is available, so the rest of the suite stays headless.

const testVertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
void main() {
	gl_Position = vec4(aPos, 1.0);
}
`

const testFragmentSource = `#version 410 core
out vec4 fragColor;
void main() {
	fragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// missing semicolon after the assignment
const brokenFragmentSource = `#version 410 core
out vec4 fragColor;
void main() {
	fragColor = vec4(1.0)
}
`

func newTestContext(t *testing.T) {
	t.Helper()

	// The context must stay on the goroutine's thread for the whole test.
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	if err := glfw.Init(); err != nil {
		t.Skipf("GLFW unavailable: %v", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(64, 64, "test", nil, nil)
	if err != nil {
		glfw.Terminate()
		t.Skipf("no OpenGL context available: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		t.Skipf("OpenGL init failed: %v", err)
	}

	t.Cleanup(func() {
		window.Destroy()
		glfw.Terminate()
	})
}

func TestShaderCompileSucceeds(t *testing.T) {
	newTestContext(t)

	shader, err := graphics.NewShader(testVertexSource, testFragmentSource)
	if err != nil {
		t.Fatalf("Expected valid sources to compile, got %v", err)
	}
	defer shader.Delete()

	var status int32
	gl.GetProgramiv(shader.ID, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		t.Errorf("Expected linked program, link status %d", status)
	}

	var logLength int32
	gl.GetProgramiv(shader.ID, gl.INFO_LOG_LENGTH, &logLength)
	if logLength > 1 {
		t.Errorf("Expected empty program info log, length %d", logLength)
	}
}

func TestShaderCompileErrorIsBounded(t *testing.T) {
	newTestContext(t)

	_, err := graphics.NewShader(testVertexSource, brokenFragmentSource)
	if err == nil {
		t.Fatalf("Expected compile error for malformed fragment source")
	}

	msg := err.Error()
	if !strings.Contains(msg, "failed to compile shader") {
		t.Errorf("Expected compile error message, got %q", msg)
	}
	if strings.TrimRight(strings.TrimPrefix(msg, "failed to compile shader: "), "\x00") == "" {
		t.Errorf("Expected non-empty driver diagnostic, got %q", msg)
	}
	// prefix plus at most 512 bytes of driver log plus the terminator
	if len(msg) > len("failed to compile shader: ")+513 {
		t.Errorf("Expected driver diagnostic bounded to 512 bytes, message length %d", len(msg))
	}
}

func TestMeshIndexRoundTrip(t *testing.T) {
	newTestContext(t)

	vertices := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
	indices := []uint32{0, 1, 2}

	mesh := graphics.NewMesh(vertices, indices, graphics.VertexLayout{Index: 0, Components: 3})
	defer mesh.Delete()

	gl.BindVertexArray(mesh.VAO)
	got := make([]uint32, len(indices))
	gl.GetBufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(got)*4, gl.Ptr(got))
	gl.BindVertexArray(0)

	for i, want := range indices {
		if got[i] != want {
			t.Errorf("Expected index %d at position %d, got %d", want, i, got[i])
		}
	}
}

func TestMeshAttributeState(t *testing.T) {
	newTestContext(t)

	vertices := []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
	indices := []uint32{0, 1, 2}
	layout := graphics.VertexLayout{Index: 0, Components: 3}

	mesh := graphics.NewMesh(vertices, indices, layout)
	defer mesh.Delete()

	gl.BindVertexArray(mesh.VAO)

	var enabled int32
	gl.GetVertexAttribiv(0, gl.VERTEX_ATTRIB_ARRAY_ENABLED, &enabled)
	if enabled != gl.TRUE {
		t.Errorf("Expected attribute 0 enabled after upload")
	}

	var stride int32
	gl.GetVertexAttribiv(0, gl.VERTEX_ATTRIB_ARRAY_STRIDE, &stride)
	if stride != layout.Stride() {
		t.Errorf("Expected stride %d, got %d", layout.Stride(), stride)
	}

	var size int32
	gl.GetVertexAttribiv(0, gl.VERTEX_ATTRIB_ARRAY_SIZE, &size)
	if size != layout.Components {
		t.Errorf("Expected %d components, got %d", layout.Components, size)
	}

	var normalized int32
	gl.GetVertexAttribiv(0, gl.VERTEX_ATTRIB_ARRAY_NORMALIZED, &normalized)
	if normalized != gl.FALSE {
		t.Errorf("Expected unnormalized attribute")
	}

	gl.BindVertexArray(0)
}
