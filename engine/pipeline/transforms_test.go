package pipeline

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestViewportMatrixMapsCorners(t *testing.T) {
	vp := NewViewportMatrix(800, 600)

	// NDC bottom-left maps to screen bottom-left with Y flipped.
	bl := vp.Mul4x1(mgl32.Vec4{-1, -1, 0, 1})
	assert.InDelta(t, 0, bl.X(), 1e-4)
	assert.InDelta(t, 600, bl.Y(), 1e-4)

	tr := vp.Mul4x1(mgl32.Vec4{1, 1, 0.5, 1})
	assert.InDelta(t, 800, tr.X(), 1e-4)
	assert.InDelta(t, 0, tr.Y(), 1e-4)

	// Depth passes through unchanged.
	assert.InDelta(t, 0.5, tr.Z(), 1e-6)

	center := vp.Mul4x1(mgl32.Vec4{0, 0, 0.25, 1})
	assert.InDelta(t, 400, center.X(), 1e-4)
	assert.InDelta(t, 300, center.Y(), 1e-4)
	assert.InDelta(t, 0.25, center.Z(), 1e-6)
}

func TestModelMatrixComposition(t *testing.T) {
	// Pure translation.
	m := NewModelMatrix(mgl32.Vec3{1, 2, 3}, 1, mgl32.Vec3{})
	p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 1, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, 3, p.Z(), 1e-5)

	// Scale applies before translation.
	m = NewModelMatrix(mgl32.Vec3{10, 0, 0}, 2, mgl32.Vec3{})
	p = m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.InDelta(t, 12, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, 2, p.Z(), 1e-5)

	// Y rotation by pi/2 sends +X to -Z before translation.
	m = NewModelMatrix(mgl32.Vec3{}, 1, mgl32.Vec3{0, math.Pi / 2, 0})
	p = m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, -1, p.Z(), 1e-5)
}

func TestShadeVertexCenterOfScreen(t *testing.T) {
	u := &Uniforms{
		Model:      mgl32.Ident4(),
		View:       NewViewMatrix(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
		Projection: NewProjectionMatrix(10, 10),
		Viewport:   NewViewportMatrix(10, 10),
	}

	sv := ShadeVertex(Vertex{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}}, u)

	// The origin projects to the screen center.
	assert.InDelta(t, 5, sv.ScreenPosition.X(), 1e-3)
	assert.InDelta(t, 5, sv.ScreenPosition.Y(), 1e-3)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, sv.WorldPosition)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, sv.Normal)
}

func TestShadeVertexNormalRenormalized(t *testing.T) {
	u := &Uniforms{
		Model:      NewModelMatrix(mgl32.Vec3{}, 4, mgl32.Vec3{}),
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
		Viewport:   mgl32.Ident4(),
	}

	sv := ShadeVertex(Vertex{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 1, 0}}, u)
	assert.InDelta(t, 1, float64(sv.Normal.Len()), 1e-5)
	assert.InDelta(t, 4, sv.WorldPosition.X(), 1e-5)
}
