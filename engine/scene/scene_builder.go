package scene

import (
	"github.com/Carmen-Shannon/sol-go/engine/camera"
	"github.com/Carmen-Shannon/sol-go/engine/model"
	"github.com/Carmen-Shannon/sol-go/engine/pipeline"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene via NewScene.
type SceneBuilderOption func(*sceneImpl)

// WithCamera sets the scene camera. Required.
//
// Parameters:
//   - cam: the camera to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.camera = cam
	}
}

// WithMesh sets the shared mesh every body is drawn with. Required.
//
// Parameters:
//   - mesh: the triangle-list mesh
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMesh(mesh model.Model) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.mesh = mesh
	}
}

// WithBodies replaces the default body table.
//
// Parameters:
//   - bodies: the bodies in draw order
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBodies(bodies []CelestialBody) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.bodies = bodies
	}
}

// WithPipeline sets a pre-configured rendering pipeline.
// A default pipeline is created when unset.
//
// Parameters:
//   - p: the pipeline to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPipeline(p pipeline.Pipeline) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.pipeline = p
	}
}

// WithSunPosition overrides the light source position derived from the body
// table.
//
// Parameters:
//   - position: the world-space light position
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSunPosition(position mgl32.Vec3) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.uniforms.SunPosition = position
		s.sunOverride = true
	}
}
