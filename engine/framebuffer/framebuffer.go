// package framebuffer provides the CPU render target: a color buffer paired
// with a per-pixel depth buffer implementing standard z-buffer semantics.
package framebuffer

import (
	"math"

	"github.com/Carmen-Shannon/sol-go/engine/color"
)

// PixelFormat selects the channel order used by Bytes.
type PixelFormat int

const (
	// FormatRGBA8 is R, G, B, A byte order (alpha fixed at 255).
	FormatRGBA8 PixelFormat = iota

	// FormatBGRA8 is B, G, R, A byte order, matching common swapchain formats.
	FormatBGRA8
)

// farDepth is the cleared depth value; any rendered fragment passes against it.
const farDepth = math.MaxFloat32

type framebufferImpl struct {
	width  int
	height int

	background color.Color
	current    color.Color

	colors []color.Color
	depths []float32
}

// Framebuffer is the render target the software pipeline plots into.
// Not safe for concurrent writes; the pipeline serializes fragment output.
type Framebuffer interface {
	// Width returns the buffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the buffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Clear resets every pixel to the background color and every depth entry
	// to the far sentinel. Called once at the start of each frame.
	Clear()

	// SetBackgroundColor sets the color Clear fills with.
	//
	// Parameters:
	//   - c: the background color
	SetBackgroundColor(c color.Color)

	// SetCurrentColor sets the draw color used by subsequent Point calls.
	//
	// Parameters:
	//   - c: the draw color
	SetCurrentColor(c color.Color)

	// Point plots the current color at (x, y) if the coordinates are in
	// bounds and depth passes the z-test (depth <= stored depth, so an equal
	// depth overwrites: the last write wins). Out-of-bounds calls and failed
	// depth tests are silent no-ops.
	//
	// Parameters:
	//   - x, y: pixel coordinates (origin top-left)
	//   - depth: fragment depth
	Point(x, y int, depth float32)

	// ColorAt returns the color stored at (x, y).
	// Out-of-bounds coordinates return the background color.
	//
	// Parameters:
	//   - x, y: pixel coordinates
	//
	// Returns:
	//   - color.Color: the stored color
	ColorAt(x, y int) color.Color

	// DepthAt returns the depth stored at (x, y).
	// Out-of-bounds coordinates return the far sentinel.
	//
	// Parameters:
	//   - x, y: pixel coordinates
	//
	// Returns:
	//   - float32: the stored depth
	DepthAt(x, y int) float32

	// Bytes packs the color buffer into a tightly packed byte slice
	// (4 bytes per pixel, row-major, top row first) for surface upload.
	//
	// Parameters:
	//   - format: the channel order to emit
	//
	// Returns:
	//   - []byte: the packed pixel data (len = width * height * 4)
	Bytes(format PixelFormat) []byte
}

var _ Framebuffer = &framebufferImpl{}

// NewFramebuffer creates a Framebuffer.
// Defaults: 800x600, background 0x333355. The buffers start cleared.
//
// Parameters:
//   - options: functional options to configure the framebuffer
//
// Returns:
//   - Framebuffer: the newly created framebuffer
func NewFramebuffer(options ...FramebufferBuilderOption) Framebuffer {
	f := &framebufferImpl{
		width:      800,
		height:     600,
		background: color.FromHex(0x333355),
	}
	for _, opt := range options {
		opt(f)
	}

	f.colors = make([]color.Color, f.width*f.height)
	f.depths = make([]float32, f.width*f.height)
	f.Clear()
	return f
}

func (f *framebufferImpl) Width() int {
	return f.width
}

func (f *framebufferImpl) Height() int {
	return f.height
}

func (f *framebufferImpl) Clear() {
	for i := range f.colors {
		f.colors[i] = f.background
		f.depths[i] = farDepth
	}
}

func (f *framebufferImpl) SetBackgroundColor(c color.Color) {
	f.background = c
}

func (f *framebufferImpl) SetCurrentColor(c color.Color) {
	f.current = c
}

func (f *framebufferImpl) Point(x, y int, depth float32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	idx := y*f.width + x
	if depth <= f.depths[idx] {
		f.colors[idx] = f.current
		f.depths[idx] = depth
	}
}

func (f *framebufferImpl) ColorAt(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return f.background
	}
	return f.colors[y*f.width+x]
}

func (f *framebufferImpl) DepthAt(x, y int) float32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return farDepth
	}
	return f.depths[y*f.width+x]
}

func (f *framebufferImpl) Bytes(format PixelFormat) []byte {
	out := make([]byte, len(f.colors)*4)
	switch format {
	case FormatBGRA8:
		for i, c := range f.colors {
			out[i*4] = c.B
			out[i*4+1] = c.G
			out[i*4+2] = c.R
			out[i*4+3] = 255
		}
	default:
		for i, c := range f.colors {
			out[i*4] = c.R
			out[i*4+1] = c.G
			out[i*4+2] = c.B
			out[i*4+3] = 255
		}
	}
	return out
}
