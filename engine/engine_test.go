package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/sol-go/engine/camera"
	"github.com/Carmen-Shannon/sol-go/engine/framebuffer"
	"github.com/Carmen-Shannon/sol-go/engine/loader"
	"github.com/Carmen-Shannon/sol-go/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() scene.Scene {
	return scene.NewScene(
		scene.WithCamera(camera.NewCamera()),
		scene.WithMesh(loader.NewUVSphere(4, 6)),
	)
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine()

	require.NotNil(t, e.Framebuffer())
	assert.Equal(t, 800, e.Framebuffer().Width())
	assert.Equal(t, 600, e.Framebuffer().Height())
	assert.Nil(t, e.Window())
	assert.Nil(t, e.Renderer())
	assert.Zero(t, e.Time())
	assert.Empty(t, e.Scenes())
}

func TestEngineSceneRegistry(t *testing.T) {
	s := testScene()
	e := NewEngine(WithScene(3, s))

	assert.Equal(t, s, e.Scene(3))
	assert.Nil(t, e.Scene(0))

	e.AddScene(0, testScene())
	assert.Len(t, e.Scenes(), 2)

	// Mutating the returned copy must not affect the engine.
	cp := e.Scenes()
	delete(cp, 3)
	assert.NotNil(t, e.Scene(3))

	e.RemoveScene(3)
	assert.Nil(t, e.Scene(3))
}

func TestEngineCustomFramebuffer(t *testing.T) {
	fb := framebuffer.NewFramebuffer(framebuffer.WithSize(64, 48))
	e := NewEngine(WithFramebuffer(fb))

	assert.Equal(t, 64, e.Framebuffer().Width())
	assert.Equal(t, 48, e.Framebuffer().Height())
}

func TestRenderLoopIdlesWithoutActiveScene(t *testing.T) {
	e := NewEngine().(*engine)

	var frames atomic.Int64
	e.SetRenderCallback(func(_ float32) {
		frames.Add(1)
	})

	e.running = true
	e.handle()
	time.Sleep(100 * time.Millisecond)
	e.Quit()
	e.wg.Wait()

	// With nothing to draw the loop sleeps each pass, so an uncapped spin
	// would show orders of magnitude more iterations than this bound.
	n := frames.Load()
	assert.Greater(t, n, int64(0))
	assert.Less(t, n, int64(1000))
}

func TestEngineQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	assert.NotPanics(t, func() { e.Quit() })
}
