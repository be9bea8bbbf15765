package model

import (
	"github.com/Carmen-Shannon/sol-go/engine/pipeline"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []pipeline.Vertex
	boundingRadius float32
}

// Model is an immutable triangle-list mesh shared between draw calls.
// The vertex slice is flattened (three consecutive vertices per face).
type Model interface {
	// Name returns the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices returns the flattened triangle-list vertex array.
	// Callers must not mutate the returned slice.
	//
	// Returns:
	//   - []pipeline.Vertex: the vertex array
	Vertices() []pipeline.Vertex

	// BoundingRadius returns the radius of the smallest origin-centered
	// sphere enclosing every vertex, used for frustum culling.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a Model from a flattened vertex array.
// The bounding radius is computed from the vertex positions unless overridden
// by an option.
//
// Parameters:
//   - name: the mesh identifier
//   - vertices: the flattened triangle-list vertices
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created model
func NewModel(name string, vertices []pipeline.Vertex, options ...ModelBuilderOption) Model {
	m := &model{
		name:     name,
		vertices: vertices,
	}
	for _, opt := range options {
		opt(m)
	}
	if m.boundingRadius == 0 {
		for _, v := range vertices {
			if l := v.Position.Len(); l > m.boundingRadius {
				m.boundingRadius = l
			}
		}
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []pipeline.Vertex {
	return m.vertices
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
