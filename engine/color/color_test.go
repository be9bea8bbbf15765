package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFloatClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		want    Color
	}{
		{"in range", 0.5, 0.0, 1.0, Color{127, 0, 255}},
		{"above one", 2.0, 1.5, 1.0, Color{255, 255, 255}},
		{"below zero", -1.0, -0.1, 0.0, Color{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat(tt.r, tt.g, tt.b))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := FromHex(0x333355)
	assert.Equal(t, Color{0x33, 0x33, 0x55}, c)
	assert.Equal(t, uint32(0x333355), c.Hex())

	// Upper byte is ignored.
	assert.Equal(t, c, FromHex(0xFF333355))
}

func TestLerp(t *testing.T) {
	a := New(0, 0, 0)
	b := New(255, 100, 10)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, a, a.Lerp(b, -2))
	assert.Equal(t, b, a.Lerp(b, 5))

	mid := a.Lerp(b, 0.5)
	assert.Equal(t, Color{128, 50, 5}, mid)
}

func TestBlendNormalBlackSentinel(t *testing.T) {
	base := New(10, 20, 30)
	assert.Equal(t, base, base.Blend(Black, BlendNormal))
	assert.Equal(t, New(1, 2, 3), base.Blend(New(1, 2, 3), BlendNormal))
}

func TestBlendArithmetic(t *testing.T) {
	white := New(255, 255, 255)
	grey := New(128, 128, 128)

	// Multiply by white is identity; by black is black.
	assert.Equal(t, grey, grey.Blend(white, BlendMultiply))
	assert.Equal(t, Black, grey.Blend(Black, BlendMultiply))

	// Add saturates at 255.
	assert.Equal(t, New(255, 255, 255), New(200, 200, 200).Add(New(100, 100, 100)))
	assert.Equal(t, New(255, 255, 255), New(200, 200, 200).Blend(New(100, 100, 100), BlendAdd))

	// Subtract floors at 0.
	assert.Equal(t, New(0, 0, 50), New(10, 20, 80).Blend(New(50, 20, 30), BlendSubtract))

	// Screen with black is identity; with white is white.
	assert.Equal(t, grey, grey.Blend(Black, BlendScreen))
	assert.Equal(t, white, grey.Blend(white, BlendScreen))
}

func TestMulClamps(t *testing.T) {
	c := New(100, 200, 50)
	assert.Equal(t, New(50, 100, 25), c.Mul(0.5))
	assert.Equal(t, New(255, 255, 255), c.Mul(10))
	assert.Equal(t, Black, c.Mul(-1))
}

func TestIsBlack(t *testing.T) {
	assert.True(t, Black.IsBlack())
	assert.False(t, New(0, 0, 1).IsBlack())
}
