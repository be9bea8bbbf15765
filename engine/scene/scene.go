// package scene holds the solar system: the celestial body table, per-frame
// orbital motion, and the draw loop feeding the software pipeline.
package scene

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/sol-go/common"
	"github.com/Carmen-Shannon/sol-go/engine/camera"
	"github.com/Carmen-Shannon/sol-go/engine/color"
	"github.com/Carmen-Shannon/sol-go/engine/framebuffer"
	"github.com/Carmen-Shannon/sol-go/engine/model"
	"github.com/Carmen-Shannon/sol-go/engine/noise"
	"github.com/Carmen-Shannon/sol-go/engine/pipeline"
	"github.com/Carmen-Shannon/sol-go/engine/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// spinRate scales the frame counter into each body's Y spin angle.
const spinRate = 0.01

// Orbit describes a body circling another body on the XZ plane.
type Orbit struct {
	// ParentName names the body being orbited.
	ParentName string

	// Radius is the orbit radius in world units.
	Radius float32

	// Speed scales the frame counter into the orbital phase angle.
	Speed float32
}

// CelestialBody is one drawable body of the system.
type CelestialBody struct {
	// Name identifies the body (also used as an orbit parent key).
	Name string

	// Position is the world-space position. Orbiting bodies have it
	// recomputed each Update.
	Position mgl32.Vec3

	// Scale is the uniform scale applied to the shared sphere mesh.
	Scale float32

	// Rotation holds the body's Euler angles; the per-frame spin is added on
	// top of it at draw time.
	Rotation mgl32.Vec3

	// Planet selects the procedural material.
	Planet shader.PlanetType

	// Orbit is non-nil for bodies that circle a parent (the moon).
	Orbit *Orbit
}

type sceneImpl struct {
	mu *sync.Mutex

	active bool

	camera   camera.Camera
	pipeline pipeline.Pipeline
	mesh     model.Model
	bodies   []CelestialBody

	uniforms    pipeline.Uniforms
	sunOverride bool
}

// Scene owns the celestial bodies and draws them into a framebuffer.
type Scene interface {
	// Camera returns the scene camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Bodies returns a copy of the body table in draw order.
	//
	// Returns:
	//   - []CelestialBody: the bodies
	Bodies() []CelestialBody

	// Active reports whether the scene should be updated and drawn.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive enables or disables the scene.
	//
	// Parameters:
	//   - active: the new state
	SetActive(active bool)

	// Update advances orbital motion for the given frame counter: orbiting
	// bodies are repositioned around their parent. Static bodies are
	// untouched.
	//
	// Parameters:
	//   - time: the frame counter
	Update(time float32)

	// Draw renders every body into the framebuffer: per body, the model
	// matrix is rebuilt from position/scale/rotation plus the time spin, and
	// the full pipeline runs over the shared mesh. Bodies whose bounding
	// sphere falls outside the view frustum are skipped. The camera's view
	// matrix is recomputed from its current pose each call.
	//
	// Parameters:
	//   - fb: the target framebuffer (already cleared by the caller)
	//   - time: the frame counter driving spin and animated shading
	Draw(fb framebuffer.Framebuffer, time float32)
}

var _ Scene = &sceneImpl{}

// NewScene creates a Scene.
// Defaults: active, the default solar system body table, a freshly generated
// UV-sphere mesh must be supplied via WithMesh, and preset noise generators.
// Panics if no mesh or camera is configured.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		mu:     &sync.Mutex{},
		active: true,
		bodies: DefaultSystem(),
		uniforms: pipeline.Uniforms{
			CloudNoise:  noise.NewCloudNoise(),
			CellNoise:   noise.NewCellNoise(),
			GroundNoise: noise.NewGroundNoise(),
			LavaNoise:   noise.NewLavaNoise(),
		},
	}
	for _, opt := range options {
		opt(s)
	}

	if s.mesh == nil {
		panic("scene: a mesh is required (use WithMesh)")
	}
	if s.camera == nil {
		panic("scene: a camera is required (use WithCamera)")
	}
	if s.pipeline == nil {
		s.pipeline = pipeline.NewPipeline()
	}

	// The sun anchors the lighting; fall back to the origin without one.
	if !s.sunOverride {
		for _, b := range s.bodies {
			if b.Planet == shader.Sun {
				s.uniforms.SunPosition = b.Position
				break
			}
		}
	}

	return s
}

// DefaultSystem returns the standard body table: the sun at the origin, six
// planets and an asteroid strung along +X, and a moon orbiting the earth.
//
// Returns:
//   - []CelestialBody: the default bodies in draw order
func DefaultSystem() []CelestialBody {
	return []CelestialBody{
		{Name: "Sun", Position: mgl32.Vec3{0, 0, 0}, Scale: 2.0, Planet: shader.Sun},
		{Name: "Asteroid", Position: mgl32.Vec3{-4, 0, 0}, Scale: 0.3, Planet: shader.Asteroid},
		{Name: "Rocky", Position: mgl32.Vec3{6, 0, 0}, Scale: 0.4, Planet: shader.RockyPlanet},
		{Name: "Earth", Position: mgl32.Vec3{12, 0, 0}, Scale: 0.6, Planet: shader.Earth},
		{Name: "Crystal", Position: mgl32.Vec3{18, 0, 0}, Scale: 0.5, Planet: shader.CrystalPlanet},
		{Name: "Fire", Position: mgl32.Vec3{24, 0, 0}, Scale: 0.7, Planet: shader.FirePlanet},
		{Name: "Water", Position: mgl32.Vec3{30, 0, 0}, Scale: 1.0, Planet: shader.WaterPlanet},
		{Name: "Cloud", Position: mgl32.Vec3{36, 0, 0}, Scale: 0.8, Planet: shader.CloudPlanet},
		{
			Name:   "Moon",
			Scale:  0.2,
			Planet: shader.Moon,
			Orbit:  &Orbit{ParentName: "Earth", Radius: 2.0, Speed: 0.05},
		},
	}
}

func (s *sceneImpl) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

func (s *sceneImpl) Bodies() []CelestialBody {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]CelestialBody, len(s.bodies))
	copy(cp, s.bodies)
	return cp
}

func (s *sceneImpl) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *sceneImpl) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *sceneImpl) Update(time float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bodies {
		orbit := s.bodies[i].Orbit
		if orbit == nil {
			continue
		}
		parent := s.findBody(orbit.ParentName)
		if parent == nil {
			continue
		}

		phase := float64(time * orbit.Speed)
		s.bodies[i].Position = parent.Position.Add(mgl32.Vec3{
			float32(math.Cos(phase)) * orbit.Radius,
			0,
			float32(math.Sin(phase)) * orbit.Radius,
		})
	}
}

func (s *sceneImpl) Draw(fb framebuffer.Framebuffer, time float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	width := float32(fb.Width())
	height := float32(fb.Height())

	s.uniforms.Time = time
	s.uniforms.View = pipeline.NewViewMatrix(s.camera.Eye(), s.camera.Center(), s.camera.Up())
	s.uniforms.Projection = pipeline.NewProjectionMatrix(width, height)
	s.uniforms.Viewport = pipeline.NewViewportMatrix(width, height)

	frustum := common.ExtractFrustum(s.uniforms.Projection.Mul4(s.uniforms.View))

	vertices := s.mesh.Vertices()
	meshRadius := s.mesh.BoundingRadius()

	for i := range s.bodies {
		body := &s.bodies[i]

		if !frustum.ContainsSphere(body.Position, meshRadius*body.Scale) {
			continue
		}

		spin := body.Rotation.Add(mgl32.Vec3{0, time * spinRate, 0})

		// Each draw call gets its own uniforms value so the model matrix for
		// one body can never bleed into another's in-flight vertex work.
		u := s.uniforms
		u.Model = pipeline.NewModelMatrix(body.Position, body.Scale, spin)

		planet := body.Planet
		s.pipeline.Render(fb, vertices, &u, func(frag pipeline.Fragment, u *pipeline.Uniforms) color.Color {
			return shader.ShadeFragment(frag, u, planet)
		})
	}
}

// findBody returns the body with the given name, or nil.
// Caller must hold the mutex.
func (s *sceneImpl) findBody(name string) *CelestialBody {
	for i := range s.bodies {
		if s.bodies[i].Name == name {
			return &s.bodies[i]
		}
	}
	return nil
}
