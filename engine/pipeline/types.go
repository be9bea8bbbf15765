// package pipeline implements the software rendering pipeline: vertex
// transformation, primitive assembly, triangle rasterization, and fragment
// write-out into a framebuffer.
package pipeline

import (
	"github.com/Carmen-Shannon/sol-go/engine/color"
	"github.com/Carmen-Shannon/sol-go/engine/noise"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one model-space vertex of a triangle-list mesh.
type Vertex struct {
	// Position is the model-space position.
	Position mgl32.Vec3

	// Normal is the model-space surface normal.
	Normal mgl32.Vec3

	// UV is the texture coordinate (carried through interpolation; the
	// procedural materials mostly shade from world position instead).
	UV mgl32.Vec2
}

// ShadedVertex is the vertex shader output for one vertex.
type ShadedVertex struct {
	// ScreenPosition holds pixel-space x/y and the post-projection depth in z.
	ScreenPosition mgl32.Vec3

	// WorldPosition is the model-matrix-transformed position, sampled by the
	// procedural materials.
	WorldPosition mgl32.Vec3

	// Normal is the world-space normal (unit length).
	Normal mgl32.Vec3

	// UV is the interpolable texture coordinate.
	UV mgl32.Vec2
}

// Fragment is one candidate pixel produced by the rasterizer.
type Fragment struct {
	// X, Y are the pixel coordinates.
	X int
	Y int

	// Depth is the affinely interpolated depth used for the z-test.
	Depth float32

	// WorldPosition is the interpolated world-space position.
	WorldPosition mgl32.Vec3

	// Normal is the interpolated (renormalized) world-space normal.
	Normal mgl32.Vec3

	// UV is the interpolated texture coordinate.
	UV mgl32.Vec2

	// Intensity is the diffuse light factor computed by the rasterizer's
	// consumer; materials multiply their albedo by it.
	Intensity float32
}

// Uniforms aggregates the per-draw transform chain and the shared shading
// inputs. One instance per frame; the Model field is rebuilt per body.
// All pipeline stages read it without mutation.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   mgl32.Mat4

	// Time is the frame counter driving animated shading and spin.
	Time float32

	// SunPosition is the world-space light source for diffuse shading.
	SunPosition mgl32.Vec3

	// Noise fields are the preset generators the materials sample.
	CloudNoise  noise.Generator
	CellNoise   noise.Generator
	GroundNoise noise.Generator
	LavaNoise   noise.Generator
}

// FragmentShaderFunc computes the final color for one fragment.
// Pure: reads the fragment and uniforms only.
type FragmentShaderFunc func(frag Fragment, u *Uniforms) color.Color
