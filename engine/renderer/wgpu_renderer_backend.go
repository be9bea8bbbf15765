package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/sol-go/engine/framebuffer"
	"github.com/cogentcore/webgpu/wgpu"
)

// wgpuRendererBackendImpl presents frames through wgpu-native.
// The surface is configured with CopyDst usage so the CPU framebuffer can be
// written straight into the acquired swapchain texture with WriteTexture —
// no render pass or shader pipeline is involved.
type wgpuRendererBackendImpl struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat
	width         uint32
	height        uint32
}

var _ rendererBackend = &wgpuRendererBackendImpl{}

// newWGPURendererBackend initializes the wgpu instance, surface, adapter,
// device, and queue. Panics on failure; there is no fallback display path.
func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor) rendererBackend {
	runtime.LockOSThread()

	b := &wgpuRendererBackendImpl{
		mu:       &sync.Mutex{},
		instance: wgpu.CreateInstance(nil),
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: b.surface,
	})
	if err != nil {
		panic(fmt.Sprintf("renderer: failed to request adapter: %v", err))
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Blit Device",
	})
	if err != nil {
		panic(fmt.Sprintf("renderer: failed to request device: %v", err))
	}
	b.device = d
	b.queue = d.GetQueue()

	return b
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = capabilities.Formats[0]
	b.width = uint32(width)
	b.height = uint32(height)

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopyDst,
		Format:      b.surfaceFormat,
		Width:       b.width,
		Height:      b.height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (b *wgpuRendererBackendImpl) PresentPixels(pixels []byte, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Clip the upload to the configured surface; the framebuffer keeps its
	// own fixed size across window resizes.
	w := min(uint32(width), b.width)
	h := min(uint32(height), b.height)
	if w == 0 || h == 0 {
		return nil
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("failed to acquire surface texture: %w", err)
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  surfaceTexture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		pixels[:uint64(h)*uint64(width)*4],
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(width) * 4,
			RowsPerImage: h,
		},
		&wgpu.Extent3D{
			Width:              w,
			Height:             h,
			DepthOrArrayLayers: 1,
		},
	)

	b.surface.Present()
	surfaceTexture.Release()
	return nil
}

func (b *wgpuRendererBackendImpl) PixelFormat() framebuffer.PixelFormat {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.surfaceFormat {
	case wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb:
		return framebuffer.FormatBGRA8
	default:
		return framebuffer.FormatRGBA8
	}
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
