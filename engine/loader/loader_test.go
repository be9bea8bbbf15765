package loader

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeFaceOBJ = `# one quad with normals and texcoords
v -1 -1 0
v 1 -1 0
v 1 1 0
v -1 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestLoadReaderTriangulatesQuad(t *testing.T) {
	l := NewLoader()
	m, err := l.LoadReader("quad", strings.NewReader(cubeFaceOBJ))
	require.NoError(t, err)

	// One quad fans into two triangles.
	vertices := m.Vertices()
	require.Len(t, vertices, 6)

	for _, v := range vertices {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)
	}
	assert.Equal(t, mgl32.Vec3{-1, -1, 0}, vertices[0].Position)
	assert.Equal(t, mgl32.Vec2{0, 0}, vertices[0].UV)

	// Fan shares the first corner.
	assert.Equal(t, vertices[0].Position, vertices[3].Position)
}

func TestLoadReaderNegativeIndices(t *testing.T) {
	obj := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	l := NewLoader()
	m, err := l.LoadReader("tri", strings.NewReader(obj))
	require.NoError(t, err)

	vertices := m.Vertices()
	require.Len(t, vertices, 3)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, vertices[0].Position)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, vertices[1].Position)
}

func TestLoadReaderRejectsBadData(t *testing.T) {
	l := NewLoader()

	_, err := l.LoadReader("empty", strings.NewReader("# nothing\n"))
	assert.Error(t, err)

	_, err = l.LoadReader("badindex", strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	assert.Error(t, err)

	_, err = l.LoadReader("zeroindex", strings.NewReader("v 0 0 0\nf 0 0 0\n"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	l := NewLoader()
	_, err := l.Load("mesh.gltf")
	assert.Error(t, err)
}

func TestCache(t *testing.T) {
	l := NewLoader()
	m, err := l.LoadReader("quad", strings.NewReader(cubeFaceOBJ))
	require.NoError(t, err)

	assert.Equal(t, m, l.Get("quad"))
	assert.Nil(t, l.Get("missing"))
	assert.Len(t, l.Models(), 1)
}

func TestNewUVSphere(t *testing.T) {
	m := NewUVSphere(8, 12)
	vertices := m.Vertices()

	// Triangle list: length divisible by 3.
	require.NotEmpty(t, vertices)
	assert.Zero(t, len(vertices)%3)

	// 12 slices * (2 pole rows of 1 tri + 6 middle rows of 2 tris) = 168 tris.
	assert.Len(t, vertices, 168*3)

	for _, v := range vertices {
		assert.InDelta(t, 1, float64(v.Position.Len()), 1e-5)
		assert.Equal(t, v.Position, v.Normal)
	}
	assert.Equal(t, float32(1), m.BoundingRadius())
}
