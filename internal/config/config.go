package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds render configuration
type Settings struct {
	mu            sync.RWMutex
	fpsLimit      int // frames per second, 0 disables the cap
	vsync         bool
	clearColor    mgl32.Vec3
	triangleColor mgl32.Vec3
}

var globalSettings = &Settings{
	fpsLimit:      0, // uncapped; pacing is left to the presentation layer
	vsync:         false,
	clearColor:    mgl32.Vec3{0.11, 0.11, 0.11},
	triangleColor: mgl32.Vec3{1.0, 0.5, 0.2},
}

// GetFPSLimit returns the current FPS cap. Zero means no cap.
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the FPS cap. Zero disables the cap.
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalSettings.fpsLimit = limit
}

// GetVSync reports whether buffer swaps wait for vertical sync.
func GetVSync() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.vsync
}

// SetVSync enables or disables vertical sync. Applied on the next
// swap-interval call, not retroactively.
func SetVSync(enabled bool) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.vsync = enabled
}

// GetClearColor returns the framebuffer clear color.
func GetClearColor() mgl32.Vec3 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.clearColor
}

// SetClearColor sets the framebuffer clear color, clamped to [0, 1].
func SetClearColor(c mgl32.Vec3) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.clearColor = clampColor(c)
}

// GetTriangleColor returns the triangle fill color.
func GetTriangleColor() mgl32.Vec3 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.triangleColor
}

// SetTriangleColor sets the triangle fill color, clamped to [0, 1].
func SetTriangleColor(c mgl32.Vec3) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.triangleColor = clampColor(c)
}

func clampColor(c mgl32.Vec3) mgl32.Vec3 {
	for i := range c {
		if c[i] < 0 {
			c[i] = 0
		}
		if c[i] > 1 {
			c[i] = 1
		}
	}
	return c
}
