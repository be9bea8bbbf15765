package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option for configuring a Renderer via NewRenderer.
type RendererBuilderOption func(*rendererImpl)

// WithSurfaceDescriptor sets the platform surface the renderer presents to.
// Required.
//
// Parameters:
//   - descriptor: the platform-specific surface descriptor (from the window)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSurfaceDescriptor(descriptor *wgpu.SurfaceDescriptor) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.surfaceDescriptor = descriptor
	}
}

// WithSize sets the initial surface size in pixels.
// Defaults to 800x600.
//
// Parameters:
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSize(width, height int) RendererBuilderOption {
	return func(r *rendererImpl) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}
