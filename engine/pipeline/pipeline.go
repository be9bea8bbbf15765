package pipeline

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/sol-go/engine/framebuffer"
)

type pipelineImpl struct {
	vertexPool    worker.DynamicWorkerPool
	vertexWorkers int
}

// Pipeline runs the software rendering stages over a vertex list and writes
// the surviving fragments into a framebuffer. Vertex shading is sharded
// across a worker pool; rasterization and fragment write-out stay serial so
// the depth-test ordering is deterministic.
type Pipeline interface {
	// Render draws one triangle-list mesh with the given uniforms and
	// fragment shader. Fragments write into fb under the z-test; the shader's
	// color is set as the framebuffer's current color before each plot.
	//
	// Parameters:
	//   - fb: the target framebuffer
	//   - vertices: the model-space triangle list (consecutive triples)
	//   - u: the active uniforms (read-only across stages)
	//   - shade: the fragment shader to apply
	Render(fb framebuffer.Framebuffer, vertices []Vertex, u *Uniforms, shade FragmentShaderFunc)

	// ShadeVertices runs the vertex stage alone, sharded across the worker
	// pool. Output order matches input order.
	//
	// Parameters:
	//   - vertices: the model-space vertices
	//   - u: the active uniforms
	//
	// Returns:
	//   - []ShadedVertex: the transformed vertices
	ShadeVertices(vertices []Vertex, u *Uniforms) []ShadedVertex
}

var _ Pipeline = &pipelineImpl{}

// NewPipeline creates a Pipeline.
// The vertex worker count defaults to NumCPU-1 (minimum 1).
//
// Parameters:
//   - options: functional options to configure the pipeline
//
// Returns:
//   - Pipeline: the newly created pipeline
func NewPipeline(options ...PipelineBuilderOption) Pipeline {
	p := &pipelineImpl{
		vertexWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(p)
	}

	// Queue size covers one task per worker per draw with headroom.
	p.vertexPool = worker.NewDynamicWorkerPool(p.vertexWorkers, 256, 1*time.Second)

	return p
}

func (p *pipelineImpl) Render(fb framebuffer.Framebuffer, vertices []Vertex, u *Uniforms, shade FragmentShaderFunc) {
	shaded := p.ShadeVertices(vertices, u)

	width, height := fb.Width(), fb.Height()
	for _, tri := range AssembleTriangles(shaded) {
		for _, frag := range Rasterize(tri[0], tri[1], tri[2], width, height) {
			frag.Intensity = diffuseIntensity(frag, u)
			fb.SetCurrentColor(shade(frag, u))
			fb.Point(frag.X, frag.Y, frag.Depth)
		}
	}
}

func (p *pipelineImpl) ShadeVertices(vertices []Vertex, u *Uniforms) []ShadedVertex {
	out := make([]ShadedVertex, len(vertices))
	if len(vertices) == 0 {
		return out
	}

	// Shard the vertex range into one task per worker; each task writes a
	// disjoint index range of the preallocated output slice.
	shards := p.vertexWorkers
	if shards > len(vertices) {
		shards = 1
	}
	chunk := (len(vertices) + shards - 1) / shards

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(vertices); start += chunk {
		end := min(start+chunk, len(vertices))
		s, e := start, end
		id := taskID
		taskID++

		wg.Add(1)
		p.vertexPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := s; i < e; i++ {
					out[i] = ShadeVertex(vertices[i], u)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out
}

// diffuseIntensity computes the lambertian factor toward the sun.
// Emissive materials ignore it.
func diffuseIntensity(frag Fragment, u *Uniforms) float32 {
	lightDir := u.SunPosition.Sub(frag.WorldPosition)
	if lightDir.Len() == 0 {
		return 1
	}
	return max(frag.Normal.Dot(lightDir.Normalize()), 0)
}
