package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitZeroDeltaLeavesEye(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{0, 0, 5}), WithCenter(mgl32.Vec3{0, 0, 0}))
	c.Orbit(0, 0)

	eye := c.Eye()
	assert.InDelta(t, 0, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Y(), 1e-5)
	assert.InDelta(t, 5, eye.Z(), 1e-5)
}

func TestOrbitPreservesRadius(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{3, 4, 5}), WithCenter(mgl32.Vec3{1, 1, 1}))
	want := c.Eye().Sub(c.Center()).Len()

	for i := 0; i < 50; i++ {
		c.Orbit(0.3, -0.17)
		got := c.Eye().Sub(c.Center()).Len()
		assert.InDelta(t, float64(want), float64(got), 1e-3)
	}
}

func TestOrbitPitchClamped(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{0, 0, 5}))

	// Push pitch far past the pole; the eye must never align with the Y axis.
	for i := 0; i < 100; i++ {
		c.Orbit(0, 1.0)
	}
	offset := c.Eye().Sub(c.Center())
	radiusXZ := math.Hypot(float64(offset.X()), float64(offset.Z()))
	pitch := math.Atan2(float64(-offset.Y()), radiusXZ)
	assert.Less(t, math.Abs(pitch), float64(math.Pi/2))
	assert.InDelta(t, math.Pi/2-0.1, math.Abs(pitch), 1e-4)
}

func TestZoomMovesTowardCenter(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{0, 0, 10}))
	c.Zoom(4)
	assert.InDelta(t, 6, c.Eye().Z(), 1e-5)

	c.Zoom(-2)
	assert.InDelta(t, 8, c.Eye().Z(), 1e-5)
}

func TestMoveCenterTranslatesRig(t *testing.T) {
	c := NewCamera(WithEye(mgl32.Vec3{0, 0, 5}), WithCenter(mgl32.Vec3{0, 0, 0}))
	c.MoveCenter(mgl32.Vec3{1, 2, 3})

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Center())
	assert.Equal(t, mgl32.Vec3{1, 2, 8}, c.Eye())
}

func TestMoveUpTranslatesBoth(t *testing.T) {
	c := NewCamera()
	c.MoveUp(2.5)
	assert.InDelta(t, 2.5, c.Eye().Y(), 1e-6)
	assert.InDelta(t, 2.5, c.Center().Y(), 1e-6)
}

func TestBirdEyeView(t *testing.T) {
	c := NewCamera()
	c.SetBirdEyeView()
	assert.Equal(t, mgl32.Vec3{0, 20, 0}, c.Eye())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Center())
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, c.Up())
}

func TestCheckIfChangedOneShot(t *testing.T) {
	c := NewCamera()

	// Construction marks the camera changed.
	assert.True(t, c.CheckIfChanged())
	assert.False(t, c.CheckIfChanged())

	c.Zoom(1)
	assert.True(t, c.CheckIfChanged())
	assert.False(t, c.CheckIfChanged())

	c.MoveCenter(mgl32.Vec3{1, 0, 0})
	c.Orbit(0.1, 0.1)
	assert.True(t, c.CheckIfChanged())
	assert.False(t, c.CheckIfChanged())
}

func TestRotatePitchMatchesOrbit(t *testing.T) {
	a := NewCamera(WithEye(mgl32.Vec3{3, 1, 4}))
	b := NewCamera(WithEye(mgl32.Vec3{3, 1, 4}))

	a.RotatePitch(0.2)
	b.Orbit(0, 0.2)
	assert.Equal(t, b.Eye(), a.Eye())

	a.RotateYaw(-0.4)
	b.Orbit(-0.4, 0)
	assert.Equal(t, b.Eye(), a.Eye())
}
