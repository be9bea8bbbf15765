package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// pitchLimit keeps the orbit pitch strictly inside (-pi/2, pi/2) so the view
// direction never collapses onto the up axis.
const pitchLimit = math.Pi/2 - 0.1

type cameraImpl struct {
	mu *sync.Mutex

	eye    mgl32.Vec3
	center mgl32.Vec3
	up     mgl32.Vec3

	changed bool
}

// Camera is an orbit rig around a look-at center.
// All mutating operations set a dirty flag which is read-and-cleared by
// CheckIfChanged, giving external consumers a one-shot change notification.
type Camera interface {
	// Eye returns the camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Center returns the look-at target.
	//
	// Returns:
	//   - mgl32.Vec3: the center position
	Center() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// ViewMatrix returns the look-at view matrix for the current pose.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// Orbit rotates the eye around the center on a sphere of constant radius.
	// Yaw and pitch are recovered from the current eye-center offset, the
	// deltas applied, and pitch clamped strictly inside (-pi/2, pi/2).
	//
	// Parameters:
	//   - deltaYaw: yaw change in radians
	//   - deltaPitch: pitch change in radians
	Orbit(deltaYaw, deltaPitch float32)

	// Zoom moves the eye along the eye-to-center direction.
	// Positive deltas move toward the center.
	//
	// Parameters:
	//   - delta: distance to travel
	Zoom(delta float32)

	// MoveCenter translates both center and eye by the same vector,
	// panning the whole rig.
	//
	// Parameters:
	//   - movement: the translation to apply
	MoveCenter(movement mgl32.Vec3)

	// MoveUp translates both eye and center along the world Y axis.
	//
	// Parameters:
	//   - amount: the Y translation to apply
	MoveUp(amount float32)

	// RotatePitch orbits by a pitch delta only, using the same spherical
	// parameterization as Orbit.
	//
	// Parameters:
	//   - angle: pitch change in radians
	RotatePitch(angle float32)

	// RotateYaw orbits by a yaw delta only, using the same spherical
	// parameterization as Orbit.
	//
	// Parameters:
	//   - angle: yaw change in radians
	RotateYaw(angle float32)

	// SetBirdEyeView resets the rig to a fixed top-down pose over the origin.
	SetBirdEyeView()

	// CheckIfChanged reports whether any mutation happened since the last
	// call, clearing the flag. One-shot: a second call without an intervening
	// mutation returns false.
	//
	// Returns:
	//   - bool: true if the camera changed since the previous check
	CheckIfChanged() bool
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new orbit Camera.
// Defaults: eye (0, 0, 5), center (0, 0, 0), up (0, 1, 0). The dirty flag
// starts set so the first CheckIfChanged reports a change.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:      &sync.Mutex{},
		eye:     mgl32.Vec3{0, 0, 5},
		center:  mgl32.Vec3{0, 0, 0},
		up:      mgl32.Vec3{0, 1, 0},
		changed: true,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) Center() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.center
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.eye, c.center, c.up)
}

func (c *cameraImpl) Orbit(deltaYaw, deltaPitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orbit(deltaYaw, deltaPitch)
}

// orbit recomputes the eye from spherical angles around the center.
// Caller must hold the mutex.
func (c *cameraImpl) orbit(deltaYaw, deltaPitch float32) {
	offset := c.eye.Sub(c.center)
	radius := offset.Len()

	yaw := float32(math.Atan2(float64(offset.Z()), float64(offset.X())))
	radiusXZ := float32(math.Sqrt(float64(offset.X()*offset.X() + offset.Z()*offset.Z())))
	pitch := float32(math.Atan2(float64(-offset.Y()), float64(radiusXZ)))

	newYaw := float32(math.Mod(float64(yaw+deltaYaw), 2*math.Pi))
	newPitch := mgl32.Clamp(pitch+deltaPitch, -pitchLimit, pitchLimit)

	sinYaw, cosYaw := math.Sincos(float64(newYaw))
	sinPitch, cosPitch := math.Sincos(float64(newPitch))

	c.eye = c.center.Add(mgl32.Vec3{
		radius * float32(cosYaw*cosPitch),
		-radius * float32(sinPitch),
		radius * float32(sinYaw*cosPitch),
	})
	c.changed = true
}

func (c *cameraImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	direction := c.center.Sub(c.eye).Normalize()
	c.eye = c.eye.Add(direction.Mul(delta))
	c.changed = true
}

func (c *cameraImpl) MoveCenter(movement mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.center = c.center.Add(movement)
	c.eye = c.eye.Add(movement)
	c.changed = true
}

func (c *cameraImpl) MoveUp(amount float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = c.eye.Add(mgl32.Vec3{0, amount, 0})
	c.center = c.center.Add(mgl32.Vec3{0, amount, 0})
	c.changed = true
}

func (c *cameraImpl) RotatePitch(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orbit(0, angle)
}

func (c *cameraImpl) RotateYaw(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orbit(angle, 0)
}

func (c *cameraImpl) SetBirdEyeView() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = mgl32.Vec3{0, 20, 0}
	c.center = mgl32.Vec3{0, 0, 0}
	c.up = mgl32.Vec3{0, 0, 1}
	c.changed = true
}

func (c *cameraImpl) CheckIfChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.changed {
		c.changed = false
		return true
	}
	return false
}
