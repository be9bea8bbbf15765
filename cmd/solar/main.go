// Command solar renders a procedurally shaded solar system with a CPU
// rasterizer and presents the frames through a WebGPU surface.
//
// Controls:
//
//	W/A/S/D     pan the camera rig on the XZ plane
//	Q/E         raise / lower the rig
//	Up/Down     orbit pitch
//	Left/Right  orbit yaw
//	1/2, scroll zoom in / out
//	B           bird's-eye view
//	Esc         quit
package main

import (
	"flag"
	"log"
	"math"

	"github.com/Carmen-Shannon/sol-go/common"
	"github.com/Carmen-Shannon/sol-go/engine"
	"github.com/Carmen-Shannon/sol-go/engine/camera"
	"github.com/Carmen-Shannon/sol-go/engine/loader"
	"github.com/Carmen-Shannon/sol-go/engine/model"
	"github.com/Carmen-Shannon/sol-go/engine/renderer"
	"github.com/Carmen-Shannon/sol-go/engine/scene"
	"github.com/Carmen-Shannon/sol-go/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	movementSpeed = 0.5
	rotationSpeed = math.Pi / 50
	zoomSpeed     = 1.0
)

func main() {
	var (
		width     = flag.Int("width", 800, "window width in pixels")
		height    = flag.Int("height", 600, "window height in pixels")
		title     = flag.String("title", "", "window title")
		modelPath = flag.String("model", "", "optional OBJ file to use as the sphere mesh")
		profile   = flag.Bool("profile", false, "log FPS and memory statistics")
	)
	flag.Parse()

	win := window.NewWindow(
		window.WithTitle(common.Coalesce(*title, "Solar System")),
		window.WithSize(*width, *height),
	)
	defer win.Close()

	display := renderer.NewRenderer(
		renderer.WithSurfaceDescriptor(win.SurfaceDescriptor()),
		renderer.WithSize(win.Width(), win.Height()),
	)
	defer display.Release()

	cam := camera.NewCamera()
	sys := scene.NewScene(
		scene.WithCamera(cam),
		scene.WithMesh(loadMesh(*modelPath)),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(display),
		engine.WithScene(0, sys),
		engine.WithProfiling(*profile),
	)

	win.SetScrollCallback(func(delta float32) {
		cam.Zoom(delta * zoomSpeed)
	})

	eng.SetTickCallback(func(_ float32) {
		handleInput(win, cam)
	})

	eng.Run()
}

// handleInput polls held keys once per tick and applies camera movement.
func handleInput(win window.Window, cam camera.Camera) {
	if win.IsKeyDown(common.KeyUp) {
		cam.RotatePitch(-rotationSpeed)
	}
	if win.IsKeyDown(common.KeyDown) {
		cam.RotatePitch(rotationSpeed)
	}
	if win.IsKeyDown(common.KeyLeft) {
		cam.RotateYaw(-rotationSpeed)
	}
	if win.IsKeyDown(common.KeyRight) {
		cam.RotateYaw(rotationSpeed)
	}

	var movement mgl32.Vec3
	if win.IsKeyDown(common.KeyW) {
		movement[2] -= movementSpeed
	}
	if win.IsKeyDown(common.KeyS) {
		movement[2] += movementSpeed
	}
	if win.IsKeyDown(common.KeyA) {
		movement[0] -= movementSpeed
	}
	if win.IsKeyDown(common.KeyD) {
		movement[0] += movementSpeed
	}
	if movement.Len() > 0 {
		cam.MoveCenter(movement)
	}

	if win.IsKeyDown(common.KeyQ) {
		cam.MoveUp(movementSpeed)
	}
	if win.IsKeyDown(common.KeyE) {
		cam.MoveUp(-movementSpeed)
	}

	if win.IsKeyDown(common.Key1) {
		cam.Zoom(zoomSpeed)
	}
	if win.IsKeyDown(common.Key2) {
		cam.Zoom(-zoomSpeed)
	}

	if win.IsKeyDown(common.KeyB) {
		cam.SetBirdEyeView()
	}
}

// loadMesh returns the shared sphere mesh, either loaded from an OBJ file or
// generated procedurally.
func loadMesh(path string) model.Model {
	if path == "" {
		return loader.NewUVSphere(20, 40)
	}
	l := loader.NewLoader()
	m, err := l.Load(path)
	if err != nil {
		log.Fatalf("failed to load model %q: %v", path, err)
	}
	return m
}
