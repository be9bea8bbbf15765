package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/sol-go/engine/camera"
	"github.com/Carmen-Shannon/sol-go/engine/color"
	"github.com/Carmen-Shannon/sol-go/engine/framebuffer"
	"github.com/Carmen-Shannon/sol-go/engine/loader"
	"github.com/Carmen-Shannon/sol-go/engine/pipeline"
	"github.com/Carmen-Shannon/sol-go/engine/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T, options ...SceneBuilderOption) Scene {
	t.Helper()
	base := []SceneBuilderOption{
		WithCamera(camera.NewCamera()),
		WithMesh(loader.NewUVSphere(8, 8)),
		WithPipeline(pipeline.NewPipeline(pipeline.WithVertexWorkers(2))),
	}
	return NewScene(append(base, options...)...)
}

func TestDefaultSystemTable(t *testing.T) {
	bodies := DefaultSystem()
	require.Len(t, bodies, 9)

	expect := []struct {
		name   string
		pos    mgl32.Vec3
		scale  float32
		planet shader.PlanetType
	}{
		{"Sun", mgl32.Vec3{0, 0, 0}, 2.0, shader.Sun},
		{"Asteroid", mgl32.Vec3{-4, 0, 0}, 0.3, shader.Asteroid},
		{"Rocky", mgl32.Vec3{6, 0, 0}, 0.4, shader.RockyPlanet},
		{"Earth", mgl32.Vec3{12, 0, 0}, 0.6, shader.Earth},
		{"Crystal", mgl32.Vec3{18, 0, 0}, 0.5, shader.CrystalPlanet},
		{"Fire", mgl32.Vec3{24, 0, 0}, 0.7, shader.FirePlanet},
		{"Water", mgl32.Vec3{30, 0, 0}, 1.0, shader.WaterPlanet},
		{"Cloud", mgl32.Vec3{36, 0, 0}, 0.8, shader.CloudPlanet},
		{"Moon", mgl32.Vec3{}, 0.2, shader.Moon},
	}
	for i, e := range expect {
		assert.Equal(t, e.name, bodies[i].Name)
		assert.Equal(t, e.pos, bodies[i].Position)
		assert.Equal(t, e.scale, bodies[i].Scale)
		assert.Equal(t, e.planet, bodies[i].Planet)
	}

	moon := bodies[8]
	require.NotNil(t, moon.Orbit)
	assert.Equal(t, "Earth", moon.Orbit.ParentName)
	assert.Equal(t, float32(2.0), moon.Orbit.Radius)
	assert.Equal(t, float32(0.05), moon.Orbit.Speed)
}

func TestMoonOrbit(t *testing.T) {
	s := testScene(t)

	// Phase 0: the moon sits at earth + (radius, 0, 0).
	s.Update(0)
	moon := s.Bodies()[8]
	assert.InDelta(t, 14, moon.Position.X(), 1e-4)
	assert.InDelta(t, 0, moon.Position.Z(), 1e-4)

	// Quarter orbit: phase pi/2 at time = pi/(2*speed).
	quarter := float32(math.Pi / 2 / 0.05)
	s.Update(quarter)
	moon = s.Bodies()[8]
	assert.InDelta(t, 12, moon.Position.X(), 1e-3)
	assert.InDelta(t, 2, moon.Position.Z(), 1e-3)
}

func TestDrawRendersSun(t *testing.T) {
	// Camera close to the sun so it fills a good part of the frame.
	s := testScene(t, WithCamera(camera.NewCamera(
		camera.WithEye(mgl32.Vec3{0, 0, 6}),
		camera.WithCenter(mgl32.Vec3{0, 0, 0}),
	)))

	fb := framebuffer.NewFramebuffer(framebuffer.WithSize(64, 48))
	s.Update(0)
	s.Draw(fb, 0)

	background := color.FromHex(0x333355)
	rendered := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if fb.ColorAt(x, y) != background {
				rendered++
			}
		}
	}
	assert.Greater(t, rendered, 10, "sun should cover pixels near the frame center")
}

func TestDrawCullsBodiesBehindCamera(t *testing.T) {
	// Looking away from every body: the frame stays background-only.
	s := testScene(t, WithCamera(camera.NewCamera(
		camera.WithEye(mgl32.Vec3{0, 0, 50}),
		camera.WithCenter(mgl32.Vec3{0, 0, 100}),
	)))

	fb := framebuffer.NewFramebuffer(framebuffer.WithSize(32, 32))
	s.Draw(fb, 0)

	background := color.FromHex(0x333355)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			require.Equal(t, background, fb.ColorAt(x, y))
		}
	}
}

// recordingPipeline captures the uniforms pointer handed to each draw call.
type recordingPipeline struct {
	calls []*pipeline.Uniforms
}

func (r *recordingPipeline) Render(_ framebuffer.Framebuffer, _ []pipeline.Vertex, u *pipeline.Uniforms, _ pipeline.FragmentShaderFunc) {
	r.calls = append(r.calls, u)
}

func (r *recordingPipeline) ShadeVertices(vertices []pipeline.Vertex, _ *pipeline.Uniforms) []pipeline.ShadedVertex {
	return make([]pipeline.ShadedVertex, len(vertices))
}

func TestDrawUsesFreshUniformsPerBody(t *testing.T) {
	rec := &recordingPipeline{}
	s := testScene(t,
		WithPipeline(rec),
		WithCamera(camera.NewCamera(camera.WithEye(mgl32.Vec3{0, 0, 10}))),
		WithBodies([]CelestialBody{
			{Name: "Sun", Position: mgl32.Vec3{0, 0, 0}, Scale: 1, Planet: shader.Sun},
			{Name: "Rocky", Position: mgl32.Vec3{2, 0, 0}, Scale: 1, Planet: shader.RockyPlanet},
		}),
	)

	s.Draw(framebuffer.NewFramebuffer(framebuffer.WithSize(64, 48)), 0)
	require.Len(t, rec.calls, 2)

	// The retained pointers must still hold each body's own model matrix: a
	// shared uniforms struct would leave both aliasing the last draw's model.
	require.NotSame(t, rec.calls[0], rec.calls[1])
	assert.Equal(t, pipeline.NewModelMatrix(mgl32.Vec3{0, 0, 0}, 1, mgl32.Vec3{}), rec.calls[0].Model)
	assert.Equal(t, pipeline.NewModelMatrix(mgl32.Vec3{2, 0, 0}, 1, mgl32.Vec3{}), rec.calls[1].Model)
}

func TestSetActive(t *testing.T) {
	s := testScene(t)
	assert.True(t, s.Active())
	s.SetActive(false)
	assert.False(t, s.Active())
}

func TestMissingMeshPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewScene(WithCamera(camera.NewCamera()))
	})
}
