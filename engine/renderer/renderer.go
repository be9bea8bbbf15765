// package renderer presents the CPU framebuffer to the display.
// The WebGPU device is used purely as a blit target: each frame the packed
// pixel data is written directly into the acquired swapchain texture.
package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/sol-go/engine/framebuffer"
	"github.com/cogentcore/webgpu/wgpu"
)

// rendererImpl is the implementation of the Renderer interface.
type rendererImpl struct {
	mu *sync.Mutex

	backend rendererBackend

	surfaceDescriptor *wgpu.SurfaceDescriptor
	width             int
	height            int
}

// Renderer uploads finished frames to the window surface.
type Renderer interface {
	// Present uploads the framebuffer's pixels into the current swapchain
	// texture and presents it. The pixel byte order is matched to the
	// configured surface format automatically.
	//
	// Parameters:
	//   - fb: the framebuffer to display
	//
	// Returns:
	//   - error: error if the surface texture could not be acquired
	Present(fb framebuffer.Framebuffer) error

	// Resize reconfigures the surface for a new window size.
	//
	// Parameters:
	//   - width: new surface width in pixels
	//   - height: new surface height in pixels
	Resize(width, height int)

	// PixelFormat returns the byte order the surface expects.
	//
	// Returns:
	//   - framebuffer.PixelFormat: the surface pixel format
	PixelFormat() framebuffer.PixelFormat

	// Release frees the GPU resources held by the renderer.
	Release()
}

var _ Renderer = &rendererImpl{}

// NewRenderer creates a Renderer bound to a window surface.
// Requires WithSurfaceDescriptor and WithSize options; panics if device
// initialization fails, matching window construction behavior.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &rendererImpl{
		mu:     &sync.Mutex{},
		width:  800,
		height: 600,
	}
	for _, opt := range options {
		opt(r)
	}

	if r.surfaceDescriptor == nil {
		panic("renderer: a surface descriptor is required (use WithSurfaceDescriptor)")
	}

	if r.backend == nil {
		r.backend = newWGPURendererBackend(r.surfaceDescriptor)
	}
	r.backend.ConfigureSurface(r.width, r.height)

	return r
}

func (r *rendererImpl) Present(fb framebuffer.Framebuffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.PresentPixels(fb.Bytes(r.backend.PixelFormat()), fb.Width(), fb.Height())
}

func (r *rendererImpl) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	r.backend.ConfigureSurface(width, height)
}

func (r *rendererImpl) PixelFormat() framebuffer.PixelFormat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.PixelFormat()
}

func (r *rendererImpl) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
