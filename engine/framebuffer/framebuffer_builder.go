package framebuffer

import (
	"github.com/Carmen-Shannon/sol-go/engine/color"
)

type FramebufferBuilderOption func(*framebufferImpl)

// WithSize sets the buffer dimensions in pixels.
// Non-positive values fall back to the 800x600 default.
//
// Parameters:
//   - width: buffer width in pixels
//   - height: buffer height in pixels
//
// Returns:
//   - FramebufferBuilderOption: option function to apply
func WithSize(width, height int) FramebufferBuilderOption {
	return func(f *framebufferImpl) {
		if width > 0 {
			f.width = width
		}
		if height > 0 {
			f.height = height
		}
	}
}

// WithBackgroundColor sets the color Clear fills with.
//
// Parameters:
//   - c: the background color
//
// Returns:
//   - FramebufferBuilderOption: option function to apply
func WithBackgroundColor(c color.Color) FramebufferBuilderOption {
	return func(f *framebufferImpl) {
		f.background = c
	}
}
