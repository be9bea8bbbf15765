package renderer

import (
	"github.com/Carmen-Shannon/sol-go/engine/framebuffer"
)

// rendererBackend defines the generic interface for presenting pixel data to
// a display surface. Concrete implementations (wgpuRendererBackend) handle
// API-specific details.
type rendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// PresentPixels writes packed pixel data into the current swapchain
	// texture and presents it. The data must be 4 bytes per pixel in the
	// backend's PixelFormat order, tightly packed, top row first.
	//
	// Parameters:
	//   - pixels: the packed pixel data
	//   - width: pixel data width
	//   - height: pixel data height
	//
	// Returns:
	//   - error: error if acquisition or upload fails
	PresentPixels(pixels []byte, width, height int) error

	// PixelFormat returns the byte order the configured surface expects.
	//
	// Returns:
	//   - framebuffer.PixelFormat: the expected byte order
	PixelFormat() framebuffer.PixelFormat

	// Release frees the backend's GPU resources.
	Release()
}
