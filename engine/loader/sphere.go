package loader

import (
	"math"

	"github.com/Carmen-Shannon/sol-go/engine/model"
	"github.com/Carmen-Shannon/sol-go/engine/pipeline"
	"github.com/go-gl/mathgl/mgl32"
)

// NewUVSphere builds a unit-radius UV sphere as a flattened triangle list.
// Positions lie on the unit sphere, so each vertex normal equals its
// position. Used as the shared celestial body mesh when no OBJ asset is
// supplied.
//
// Parameters:
//   - stacks: latitude subdivision count (minimum 3)
//   - slices: longitude subdivision count (minimum 3)
//
// Returns:
//   - model.Model: the generated sphere mesh
func NewUVSphere(stacks, slices int) model.Model {
	if stacks < 3 {
		stacks = 3
	}
	if slices < 3 {
		slices = 3
	}

	at := func(stack, slice int) pipeline.Vertex {
		phi := math.Pi * float64(stack) / float64(stacks)
		theta := 2 * math.Pi * float64(slice) / float64(slices)

		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)

		pos := mgl32.Vec3{
			float32(sinPhi * cosTheta),
			float32(cosPhi),
			float32(sinPhi * sinTheta),
		}
		return pipeline.Vertex{
			Position: pos,
			Normal:   pos,
			UV: mgl32.Vec2{
				float32(slice) / float32(slices),
				float32(stack) / float32(stacks),
			},
		}
	}

	vertices := make([]pipeline.Vertex, 0, stacks*slices*6)
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			v00 := at(stack, slice)
			v01 := at(stack, slice+1)
			v10 := at(stack+1, slice)
			v11 := at(stack+1, slice+1)

			// Top cap rows degenerate into triangles; skip the collapsed half
			// of each quad at the poles.
			if stack != 0 {
				vertices = append(vertices, v00, v10, v01)
			}
			if stack != stacks-1 {
				vertices = append(vertices, v01, v10, v11)
			}
		}
	}

	return model.NewModel("uv_sphere", vertices, model.WithBoundingRadius(1))
}
