package noise

// Preset generators for the solar system materials. Seeds and fractal
// parameters are fixed so every run renders the same surfaces.

// NewCloudNoise returns the smooth OpenSimplex field used for cloud cover
// and gas giant banding.
//
// Returns:
//   - Generator: OpenSimplex, seed 1337, frequency 0.01
func NewCloudNoise() Generator {
	return NewGenerator(
		WithSource(SourceOpenSimplex),
		WithSeed(1337),
		WithFrequency(0.01),
	)
}

// NewCellNoise returns the cellular field used for crystal facets and
// cratered surfaces.
//
// Returns:
//   - Generator: Cellular, seed 1337, frequency 0.1
func NewCellNoise() Generator {
	return NewGenerator(
		WithSource(SourceCellular),
		WithSeed(1337),
		WithFrequency(0.1),
	)
}

// NewGroundNoise returns the layered cellular field used for rocky terrain
// cracks.
//
// Returns:
//   - Generator: Cellular FBm, 5 octaves, lacunarity 2.0, gain 0.5, frequency 0.05
func NewGroundNoise() Generator {
	return NewGenerator(
		WithSource(SourceCellular),
		WithSeed(1337),
		WithFrequency(0.05),
		WithFractal(5, 2.0, 0.5),
	)
}

// NewLavaNoise returns the turbulent Perlin field used for lava and solar
// surface activity.
//
// Returns:
//   - Generator: Perlin FBm, 6 octaves, lacunarity 2.0, gain 0.5, frequency 0.002, seed 42
func NewLavaNoise() Generator {
	return NewGenerator(
		WithSource(SourcePerlin),
		WithSeed(42),
		WithFrequency(0.002),
		WithFractal(6, 2.0, 0.5),
	)
}
