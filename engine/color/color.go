// package color provides the 8-bit RGB color value type used by the software
// renderer, including the blend modes the procedural shaders composite with.
package color

import (
	"fmt"
	"math"
)

// Color is an 8-bit-per-channel RGB color.
// It is a plain value type; all operations return new values.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// BlendMode selects how two colors are composited by Blend.
type BlendMode int

const (
	// BlendNormal returns the blend color, unless the blend color is pure
	// black, in which case the base color is kept. Pure black acts as a
	// transparency sentinel for shader layers.
	BlendNormal BlendMode = iota

	// BlendMultiply darkens: per-channel (base * blend) / 255.
	BlendMultiply

	// BlendAdd brightens: per-channel saturating addition.
	BlendAdd

	// BlendSubtract darkens: per-channel subtraction floored at 0.
	BlendSubtract

	// BlendScreen brightens: 255 - ((255-base) * (255-blend)) / 255.
	BlendScreen
)

// Black is the zero color, used by shaders as the "nothing here" layer value.
var Black = Color{0, 0, 0}

// New creates a Color from 8-bit channel values.
//
// Parameters:
//   - r, g, b: channel values in [0, 255]
//
// Returns:
//   - Color: the color
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromFloat creates a Color from floating point channels.
// Each channel is clamped to [0, 1] before scaling to [0, 255].
//
// Parameters:
//   - r, g, b: channel values, any range (clamped)
//
// Returns:
//   - Color: the quantized color
func FromFloat(r, g, b float32) Color {
	return Color{
		R: floatChannel(r),
		G: floatChannel(g),
		B: floatChannel(b),
	}
}

// FromHex creates a Color from a packed 0xRRGGBB value.
// Bits above the low 24 are ignored.
//
// Parameters:
//   - hex: packed color, e.g. 0x333355
//
// Returns:
//   - Color: the unpacked color
func FromHex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// Hex packs the color into a 0x00RRGGBB value. Round-trips with FromHex.
//
// Returns:
//   - uint32: the packed color
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// IsBlack reports whether all three channels are zero.
//
// Returns:
//   - bool: true for pure black
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Lerp linearly interpolates between c and other.
// t is clamped to [0, 1]; channels round to nearest.
//
// Parameters:
//   - other: the color at t = 1
//   - t: interpolation factor
//
// Returns:
//   - Color: the interpolated color
func (c Color) Lerp(other Color, t float32) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
	}
}

// Blend composites blend over c using the given mode.
//
// Parameters:
//   - blend: the layer color
//   - mode: the blend mode
//
// Returns:
//   - Color: the composited color
func (c Color) Blend(blend Color, mode BlendMode) Color {
	switch mode {
	case BlendNormal:
		if blend.IsBlack() {
			return c
		}
		return blend
	case BlendMultiply:
		return Color{
			R: uint8(uint16(c.R) * uint16(blend.R) / 255),
			G: uint8(uint16(c.G) * uint16(blend.G) / 255),
			B: uint8(uint16(c.B) * uint16(blend.B) / 255),
		}
	case BlendAdd:
		return c.Add(blend)
	case BlendSubtract:
		return Color{
			R: subChannel(c.R, blend.R),
			G: subChannel(c.G, blend.G),
			B: subChannel(c.B, blend.B),
		}
	case BlendScreen:
		return Color{
			R: screenChannel(c.R, blend.R),
			G: screenChannel(c.G, blend.G),
			B: screenChannel(c.B, blend.B),
		}
	default:
		return c
	}
}

// Add returns the per-channel saturating sum of c and other.
//
// Parameters:
//   - other: the color to add
//
// Returns:
//   - Color: the saturated sum
func (c Color) Add(other Color) Color {
	return Color{
		R: addChannel(c.R, other.R),
		G: addChannel(c.G, other.G),
		B: addChannel(c.B, other.B),
	}
}

// Mul scales each channel by f, clamping the result to [0, 255].
// Negative factors yield black.
//
// Parameters:
//   - f: the scale factor
//
// Returns:
//   - Color: the scaled color
func (c Color) Mul(f float32) Color {
	return Color{
		R: mulChannel(c.R, f),
		G: mulChannel(c.G, f),
		B: mulChannel(c.B, f),
	}
}

// String implements fmt.Stringer for log output.
func (c Color) String() string {
	return fmt.Sprintf("Color(r: %d, g: %d, b: %d)", c.R, c.G, c.B)
}

func floatChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func lerpChannel(a, b uint8, t float32) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*float64(t)))
}

func addChannel(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func subChannel(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

func screenChannel(a, b uint8) uint8 {
	return 255 - uint8(uint16(255-a)*uint16(255-b)/255)
}

func mulChannel(a uint8, f float32) uint8 {
	v := float32(a) * f
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
