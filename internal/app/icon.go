package app

import (
	"image"
	"image/color"

	"hello-triangle/internal/config"
	"hello-triangle/internal/graphics/renderables/triangle"

	"golang.org/x/image/draw"
)

// iconSizes are the sizes GLFW commonly picks window icons from.
var iconSizes = []int{48, 32, 16}

// BuildIcons rasterizes the triangle into window icons. The largest size is
// rendered directly and the smaller ones are downscaled from it.
func BuildIcons() []image.Image {
	base := rasterizeTriangle(iconSizes[0])

	icons := make([]image.Image, 0, len(iconSizes))
	icons = append(icons, base)
	for _, size := range iconSizes[1:] {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Rect, base, base.Rect, draw.Over, nil)
		icons = append(icons, dst)
	}
	return icons
}

// rasterizeTriangle fills the triangle's NDC geometry into a square image.
func rasterizeTriangle(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	c := config.GetTriangleColor()
	fill := color.RGBA{
		R: uint8(c.X() * 255),
		G: uint8(c.Y() * 255),
		B: uint8(c.Z() * 255),
		A: 255,
	}

	v := triangle.Vertices
	ax, ay := ndcToPixel(float64(v[0]), float64(v[1]), size)
	bx, by := ndcToPixel(float64(v[3]), float64(v[4]), size)
	cx, cy := ndcToPixel(float64(v[6]), float64(v[7]), size)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// sample at the pixel center
			if inTriangle(float64(x)+0.5, float64(y)+0.5, ax, ay, bx, by, cx, cy) {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img
}

// ndcToPixel maps normalized device coordinates to pixel space with the
// Y axis flipped (NDC grows up, image rows grow down).
func ndcToPixel(x, y float64, size int) (float64, float64) {
	s := float64(size)
	return (x + 1) / 2 * s, (1 - y) / 2 * s
}

func inTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := edge(px, py, ax, ay, bx, by)
	d2 := edge(px, py, bx, by, cx, cy)
	d3 := edge(px, py, cx, cy, ax, ay)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(px, py, ax, ay, bx, by float64) float64 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}
