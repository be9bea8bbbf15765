package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicForFixedSeed(t *testing.T) {
	sources := []struct {
		name   string
		source Source
	}{
		{"opensimplex", SourceOpenSimplex},
		{"perlin", SourcePerlin},
		{"cellular", SourceCellular},
	}
	for _, tt := range sources {
		t.Run(tt.name, func(t *testing.T) {
			a := NewGenerator(WithSource(tt.source), WithSeed(99), WithFrequency(0.1))
			b := NewGenerator(WithSource(tt.source), WithSeed(99), WithFrequency(0.1))
			for _, p := range [][3]float32{{0, 0, 0}, {1.5, -2.25, 3.75}, {100, 50, -30}} {
				assert.Equal(t, a.Sample3D(p[0], p[1], p[2]), b.Sample3D(p[0], p[1], p[2]))
			}
		})
	}
}

func TestOutputBounded(t *testing.T) {
	gens := map[string]Generator{
		"cloud":  NewCloudNoise(),
		"cell":   NewCellNoise(),
		"ground": NewGroundNoise(),
		"lava":   NewLavaNoise(),
	}
	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			for x := float32(-50); x <= 50; x += 7.3 {
				for y := float32(-50); y <= 50; y += 11.1 {
					v := g.Sample3D(x, y, x*0.5-y)
					assert.GreaterOrEqual(t, v, float32(-1.5))
					assert.LessOrEqual(t, v, float32(1.5))
				}
			}
		})
	}
}

func TestFractalStaysBounded(t *testing.T) {
	g := NewGenerator(
		WithSource(SourcePerlin),
		WithSeed(42),
		WithFrequency(0.5),
		WithFractal(8, 2.0, 0.5),
	)
	for i := 0; i < 100; i++ {
		v := g.Sample3D(float32(i)*1.7, float32(i)*-0.9, float32(i)*0.3)
		assert.GreaterOrEqual(t, v, float32(-1.5))
		assert.LessOrEqual(t, v, float32(1.5))
	}
}

func TestSeedChangesField(t *testing.T) {
	a := NewGenerator(WithSource(SourceCellular), WithSeed(1), WithFrequency(0.3))
	b := NewGenerator(WithSource(SourceCellular), WithSeed(2), WithFrequency(0.3))

	differs := false
	for i := 0; i < 20 && !differs; i++ {
		p := float32(i) * 2.1
		if a.Sample3D(p, p*0.5, -p) != b.Sample3D(p, p*0.5, -p) {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should produce different fields")
}

func TestFrequencyAccessor(t *testing.T) {
	g := NewGenerator(WithFrequency(0.25))
	assert.Equal(t, float32(0.25), g.Frequency())
}
