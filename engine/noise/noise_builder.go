package noise

type GeneratorBuilderOption func(*generatorImpl)

// WithSource sets the base noise algorithm.
//
// Parameters:
//   - source: the noise source (OpenSimplex, Perlin, or Cellular)
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithSource(source Source) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.source = source
	}
}

// WithSeed sets the generator seed. Equal seeds produce identical fields.
//
// Parameters:
//   - seed: the seed value
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithSeed(seed int64) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.seed = seed
	}
}

// WithFrequency sets the coordinate scale applied before sampling.
// Lower frequencies produce larger features.
//
// Parameters:
//   - frequency: the frequency (default 0.01)
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithFrequency(frequency float32) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.frequency = frequency
	}
}

// WithFractal enables fractal Brownian motion layering.
// Each octave samples at frequency scaled by lacunarity^i with amplitude
// gain^i; the sum is normalized by total amplitude.
//
// Parameters:
//   - octaves: number of layers (values <= 1 disable layering)
//   - lacunarity: per-octave frequency multiplier (typically 2.0)
//   - gain: per-octave amplitude multiplier (typically 0.5)
//
// Returns:
//   - GeneratorBuilderOption: option function to apply
func WithFractal(octaves int, lacunarity, gain float64) GeneratorBuilderOption {
	return func(g *generatorImpl) {
		g.octaves = octaves
		g.lacunarity = lacunarity
		g.gain = gain
	}
}
