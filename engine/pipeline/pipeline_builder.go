package pipeline

type PipelineBuilderOption func(*pipelineImpl)

// WithVertexWorkers sets the number of workers the vertex stage shards
// across. Values <= 0 keep the default (NumCPU-1, minimum 1).
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithVertexWorkers(workers int) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		if workers > 0 {
			p.vertexWorkers = workers
		}
	}
}
