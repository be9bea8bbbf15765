package shader

import (
	"math"

	"github.com/Carmen-Shannon/sol-go/engine/color"
	"github.com/Carmen-Shannon/sol-go/engine/noise"
	"github.com/Carmen-Shannon/sol-go/engine/pipeline"
	"github.com/go-gl/mathgl/mgl32"
)

// ShadeFragment computes the final color for one fragment under the active
// material. The sun is emissive and ignores the diffuse intensity; every
// other material is multiplied by it. Pure function over fragment + uniforms.
//
// Parameters:
//   - frag: the interpolated fragment
//   - u: the active uniforms (read-only)
//   - planet: the material to apply
//
// Returns:
//   - color.Color: the shaded color
func ShadeFragment(frag pipeline.Fragment, u *pipeline.Uniforms, planet PlanetType) color.Color {
	switch planet {
	case Sun:
		return shadeSun(frag, u)
	case RockyPlanet:
		return shadeRocky(frag, u)
	case Earth:
		return shadeEarth(frag, u)
	case CrystalPlanet:
		return shadeCrystal(frag, u)
	case FirePlanet:
		return shadeFire(frag, u)
	case WaterPlanet:
		return shadeWater(frag, u)
	case CloudPlanet:
		return shadeCloud(frag, u)
	case Asteroid:
		return shadeAsteroid(frag, u)
	case Moon:
		return shadeMoon(frag, u)
	default:
		return color.Black
	}
}

// sample evaluates a noise field at a zoomed world position, with an optional
// time drift along X. Output is remapped from [-1, 1] to [0, 1].
func sample(g noise.Generator, p mgl32.Vec3, zoom, drift float32) float32 {
	v := g.Sample3D(p.X()*zoom+drift, p.Y()*zoom, p.Z()*zoom)
	t := (v + 1) / 2
	return mgl32.Clamp(t, 0, 1)
}

// shadeSun renders the emissive solar surface: a turbulent lava gradient with
// screen-blended hot spots that churn over time.
func shadeSun(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	p := frag.WorldPosition
	t := sample(u.LavaNoise, p, 500, u.Time*2)

	base := color.FromHex(0xFF4500).Lerp(color.FromHex(0xFFDD33), t)

	spots := sample(u.CellNoise, p, 8, u.Time*0.5)
	glow := color.FromHex(0xFFFFAA).Mul(spots * spots)
	return base.Blend(glow, color.BlendScreen)
}

// shadeRocky renders cracked grey-brown terrain from the layered ground field.
func shadeRocky(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	t := sample(u.GroundNoise, frag.WorldPosition, 60, 0)

	dark := color.FromHex(0x5A4632)
	light := color.FromHex(0xA98D6F)
	return dark.Lerp(light, t).Mul(frag.Intensity)
}

// shadeEarth layers ocean, landmass, and drifting cloud cover.
func shadeEarth(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	p := frag.WorldPosition

	ocean := color.FromHex(0x1F3B73)
	land := color.FromHex(0x2E8B57)
	peak := color.FromHex(0x8FBC8F)

	surface := ocean
	terrain := sample(u.GroundNoise, p, 40, 0)
	if terrain > 0.55 {
		surface = land.Lerp(peak, (terrain-0.55)/0.45)
	}

	// Cloud layer drifts with time; black is the transparency sentinel.
	clouds := color.Black
	cover := sample(u.CloudNoise, p, 120, u.Time*5)
	if cover > 0.6 {
		clouds = color.FromHex(0xFFFFFF).Mul((cover - 0.6) / 0.4)
	}

	return surface.Blend(clouds, color.BlendNormal).Mul(frag.Intensity)
}

// shadeCrystal renders faceted cell structure with bright fracture lines.
func shadeCrystal(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	p := frag.WorldPosition
	t := sample(u.CellNoise, p, 25, 0)

	deep := color.FromHex(0x152C66)
	face := color.FromHex(0x55C8E8)
	c := deep.Lerp(face, t)

	// Cell boundaries (high F1 distance) read as glowing seams.
	if t > 0.8 {
		c = c.Blend(color.FromHex(0xCCF5FF).Mul((t-0.8)/0.2), color.BlendScreen)
	}
	return c.Mul(frag.Intensity)
}

// shadeFire renders a lava surface: lit crust with self-glowing melt channels.
func shadeFire(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	p := frag.WorldPosition
	t := sample(u.LavaNoise, p, 800, u.Time*3)

	crust := color.FromHex(0x33100A).Lerp(color.FromHex(0x8C2D0E), t)
	lit := crust.Mul(frag.Intensity)

	// The melt glows regardless of sun direction.
	glow := color.FromHex(0xFF6A00).Mul(t * t)
	return lit.Blend(glow, color.BlendAdd)
}

// shadeWater renders deep rolling water with sparse white caps.
func shadeWater(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	p := frag.WorldPosition
	t := sample(u.CloudNoise, p, 90, u.Time*4)

	deep := color.FromHex(0x0B2A59)
	shallow := color.FromHex(0x2F6FB2)
	c := deep.Lerp(shallow, t)

	if t > 0.85 {
		c = c.Blend(color.FromHex(0xE8F4FF).Mul((t-0.85)/0.15), color.BlendScreen)
	}
	return c.Mul(frag.Intensity)
}

// shadeCloud renders a banded gas giant; bands follow world-space latitude
// warped by the cloud field.
func shadeCloud(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	p := frag.WorldPosition
	warp := sample(u.CloudNoise, p, 150, u.Time*2)

	band := float32(math.Sin(float64(p.Y()*8 + warp*4)))
	t := (band + 1) / 2

	low := color.FromHex(0xB08B57)
	high := color.FromHex(0xE8D8B8)
	return low.Lerp(high, t).Mul(frag.Intensity)
}

// shadeAsteroid renders grey pitted rubble.
func shadeAsteroid(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	t := sample(u.CellNoise, frag.WorldPosition, 45, 0)

	dark := color.FromHex(0x3C3C3C)
	light := color.FromHex(0x8A8A8A)
	return dark.Lerp(light, t).Mul(frag.Intensity)
}

// shadeMoon renders a cratered grey surface; low cell values read as crater
// floors.
func shadeMoon(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
	t := sample(u.CellNoise, frag.WorldPosition, 35, 0)

	c := color.FromHex(0xBFBFBF)
	if t < 0.35 {
		c = c.Blend(color.FromHex(0x404040).Mul(1-t/0.35), color.BlendSubtract)
	}
	return c.Mul(frag.Intensity)
}
