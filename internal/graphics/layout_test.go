package graphics_test

import (
	"testing"

	"hello-triangle/internal/graphics"
)

func TestVertexLayoutStride(t *testing.T) {
	layout := graphics.VertexLayout{Index: 0, Components: 3}
	if got := layout.Stride(); got != 12 {
		t.Errorf("Expected stride 12 for 3 floats, got %d", got)
	}
}

func TestVertexLayoutStrideTwoComponents(t *testing.T) {
	layout := graphics.VertexLayout{Index: 0, Components: 2}
	if got := layout.Stride(); got != 8 {
		t.Errorf("Expected stride 8 for 2 floats, got %d", got)
	}
}
