package pipeline

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform constructors are pure functions; the frame orchestrator rebuilds
// the model matrix per body and the view matrix once per frame.

// NewModelMatrix builds a model matrix from translation, uniform scale, and
// Euler rotation. Rotation order is fixed: X, then Y, then Z (matrices
// multiplied Rz * Ry * Rx), combined with translation and scale applied last.
//
// Parameters:
//   - translation: world-space position
//   - scale: uniform scale factor
//   - rotation: Euler angles in radians (x, y, z)
//
// Returns:
//   - mgl32.Mat4: the model matrix
func NewModelMatrix(translation mgl32.Vec3, scale float32, rotation mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(rotation.X()))

	transform := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z()).
		Mul4(mgl32.Scale3D(scale, scale, scale))

	return transform.Mul4(rot)
}

// NewViewMatrix builds a look-at view matrix.
//
// Parameters:
//   - eye: camera position
//   - center: look-at target
//   - up: up vector
//
// Returns:
//   - mgl32.Mat4: the view matrix
func NewViewMatrix(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// NewProjectionMatrix builds the scene's perspective projection:
// 45 degree vertical field of view, near 0.1, far 1000.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func NewProjectionMatrix(width, height float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(45), width/height, 0.1, 1000)
}

// NewViewportMatrix maps normalized device coordinates to pixel space.
// Y is flipped (screen Y grows downward) and depth passes through unchanged.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - mgl32.Mat4: the viewport matrix
func NewViewportMatrix(width, height float32) mgl32.Mat4 {
	// Column-major: diag (w/2, -h/2, 1, 1), translation (w/2, h/2, 0).
	return mgl32.Mat4{
		width / 2, 0, 0, 0,
		0, -height / 2, 0, 0,
		0, 0, 1, 0,
		width / 2, height / 2, 0, 1,
	}
}
