package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexLayout describes a single tightly packed float attribute.
type VertexLayout struct {
	Index      uint32 // attribute location in the vertex shader
	Components int32  // floats per vertex
}

// Stride returns the byte distance between consecutive vertices.
func (l VertexLayout) Stride() int32 {
	return l.Components * 4
}

// Mesh owns a vertex array with its vertex and element buffers. The data is
// uploaded once with STATIC_DRAW and never mutated afterwards.
type Mesh struct {
	VAO uint32
	VBO uint32
	EBO uint32

	indexCount int32
}

// NewMesh uploads the vertex and index data to GPU buffers and records the
// attribute layout in a vertex array. The caller-supplied slices and the
// layout must agree; no validation is performed.
func NewMesh(vertices []float32, indices []uint32, layout VertexLayout) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.GenBuffers(1, &m.EBO)
	gl.BindVertexArray(m.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(layout.Index, layout.Components, gl.FLOAT, false, layout.Stride(), gl.PtrOffset(0))
	gl.EnableVertexAttribArray(layout.Index)

	// Unbind the VAO first so the element buffer binding stays recorded in it.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m
}

// Draw issues one indexed draw call with triangle topology.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete releases the buffers and the vertex array.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteBuffers(1, &m.EBO)
	gl.DeleteVertexArrays(1, &m.VAO)
}
