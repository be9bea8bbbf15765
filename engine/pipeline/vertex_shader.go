package pipeline

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ShadeVertex transforms one model-space vertex into screen space.
// Position runs through model, view, projection, perspective divide, then the
// viewport matrix. The normal is transformed by the model matrix's upper-left
// 3x3 only and renormalized. Pure per-vertex function, safe to run in
// parallel across a mesh.
//
// Parameters:
//   - v: the model-space vertex
//   - u: the active uniforms (read-only)
//
// Returns:
//   - ShadedVertex: the screen-space vertex with carried attributes
func ShadeVertex(v Vertex, u *Uniforms) ShadedVertex {
	pos := mgl32.Vec4{v.Position.X(), v.Position.Y(), v.Position.Z(), 1}

	world := u.Model.Mul4x1(pos)
	clip := u.Projection.Mul4(u.View).Mul4x1(world)

	w := clip.W()
	if w == 0 {
		w = 1
	}
	ndc := mgl32.Vec4{clip.X() / w, clip.Y() / w, clip.Z() / w, 1}

	screen := u.Viewport.Mul4x1(ndc)

	normal := u.Model.Mat3().Mul3x1(v.Normal)
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}

	return ShadedVertex{
		ScreenPosition: mgl32.Vec3{screen.X(), screen.Y(), screen.Z()},
		WorldPosition:  mgl32.Vec3{world.X(), world.Y(), world.Z()},
		Normal:         normal,
		UV:             v.UV,
	}
}
