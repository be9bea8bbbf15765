package framebuffer

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/sol-go/engine/color"
	"github.com/stretchr/testify/assert"
)

func TestDepthTest(t *testing.T) {
	fb := NewFramebuffer(WithSize(16, 16))

	near := color.New(255, 0, 0)
	far := color.New(0, 255, 0)

	// Nearer write replaces farther.
	fb.SetCurrentColor(far)
	fb.Point(4, 4, 5.0)
	fb.SetCurrentColor(near)
	fb.Point(4, 4, 3.0)
	assert.Equal(t, near, fb.ColorAt(4, 4))
	assert.Equal(t, float32(3.0), fb.DepthAt(4, 4))

	// Farther write is occluded.
	fb.SetCurrentColor(far)
	fb.Point(4, 4, 7.0)
	assert.Equal(t, near, fb.ColorAt(4, 4))
	assert.Equal(t, float32(3.0), fb.DepthAt(4, 4))
}

func TestEqualDepthLastWins(t *testing.T) {
	fb := NewFramebuffer(WithSize(8, 8))

	first := color.New(10, 10, 10)
	second := color.New(20, 20, 20)

	fb.SetCurrentColor(first)
	fb.Point(2, 2, 1.5)
	fb.SetCurrentColor(second)
	fb.Point(2, 2, 1.5)
	assert.Equal(t, second, fb.ColorAt(2, 2))
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	fb := NewFramebuffer(WithSize(8, 8))
	fb.SetCurrentColor(color.New(255, 255, 255))

	fb.Point(-1, 0, 0)
	fb.Point(0, -1, 0)
	fb.Point(8, 0, 0)
	fb.Point(0, 8, 0)

	bg := color.FromHex(0x333355)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, bg, fb.ColorAt(x, y))
		}
	}
}

func TestClearResetsColorAndDepth(t *testing.T) {
	bg := color.FromHex(0x112233)
	fb := NewFramebuffer(WithSize(4, 4), WithBackgroundColor(bg))

	fb.SetCurrentColor(color.New(200, 100, 50))
	fb.Point(1, 1, 2.0)
	fb.Clear()

	assert.Equal(t, bg, fb.ColorAt(1, 1))
	assert.Equal(t, float32(math.MaxFloat32), fb.DepthAt(1, 1))
}

func TestBytesFormats(t *testing.T) {
	fb := NewFramebuffer(WithSize(2, 1), WithBackgroundColor(color.Black))
	fb.SetCurrentColor(color.New(1, 2, 3))
	fb.Point(0, 0, 0)

	rgba := fb.Bytes(FormatRGBA8)
	assert.Equal(t, []byte{1, 2, 3, 255, 0, 0, 0, 255}, rgba)

	bgra := fb.Bytes(FormatBGRA8)
	assert.Equal(t, []byte{3, 2, 1, 255, 0, 0, 0, 255}, bgra)
}

func TestDefaults(t *testing.T) {
	fb := NewFramebuffer()
	assert.Equal(t, 800, fb.Width())
	assert.Equal(t, 600, fb.Height())
	assert.Equal(t, color.FromHex(0x333355), fb.ColorAt(0, 0))
}
