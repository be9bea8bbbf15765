package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/sol-go/engine/pipeline"
	"github.com/go-gl/mathgl/mgl32"
)

// loaderBackend defines the generic interface for loading meshes from files
// or streams. Concrete implementations (e.g., objLoaderBackend) handle
// format-specific details.
type loaderBackend interface {
	// Load imports a flattened triangle list from the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - []pipeline.Vertex: the flattened triangle-list vertices
	//   - error: error if loading fails
	Load(path string) ([]pipeline.Vertex, error)

	// LoadReader imports a flattened triangle list from a reader stream.
	//
	// Parameters:
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - []pipeline.Vertex: the flattened triangle-list vertices
	//   - error: error if loading fails
	LoadReader(r io.Reader) ([]pipeline.Vertex, error)
}

// objLoaderBackend parses Wavefront OBJ text: v/vt/vn statements and f faces
// with v, v/vt, v//vn, and v/vt/vn index forms. Polygon faces are
// triangulated as fans. Indices are 1-based; negative indices count back from
// the end of the respective list.
//
// Reference: https://paulbourke.net/dataformats/obj/
type objLoaderBackend struct{}

var _ loaderBackend = &objLoaderBackend{}

func (b *objLoaderBackend) Load(path string) ([]pipeline.Vertex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()
	return b.LoadReader(file)
}

func (b *objLoaderBackend) LoadReader(r io.Reader) ([]pipeline.Vertex, error) {
	var (
		positions []mgl32.Vec3
		normals   []mgl32.Vec3
		uvs       []mgl32.Vec2
		out       []pipeline.Vertex
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad vertex: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad normal: %w", lineNo, err)
			}
			normals = append(normals, v)
		case "vt":
			v, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad texcoord: %w", lineNo, err)
			}
			uvs = append(uvs, v)
		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: face with %d vertices", lineNo, len(corners))
			}
			face := make([]pipeline.Vertex, len(corners))
			for i, c := range corners {
				v, err := resolveFaceVertex(c, positions, uvs, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face[i] = v
			}
			// Triangulate the polygon as a fan around the first corner.
			for i := 1; i+1 < len(face); i++ {
				out = append(out, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("OBJ data contains no faces")
	}
	return out, nil
}

// resolveFaceVertex parses one face corner ("1", "1/2", "1//3", "1/2/3") and
// resolves its indices against the accumulated attribute lists.
func resolveFaceVertex(corner string, positions []mgl32.Vec3, uvs []mgl32.Vec2, normals []mgl32.Vec3) (pipeline.Vertex, error) {
	parts := strings.Split(corner, "/")

	var v pipeline.Vertex

	idx, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return v, fmt.Errorf("bad position index %q: %w", parts[0], err)
	}
	v.Position = positions[idx]

	if len(parts) > 1 && parts[1] != "" {
		idx, err := resolveIndex(parts[1], len(uvs))
		if err != nil {
			return v, fmt.Errorf("bad texcoord index %q: %w", parts[1], err)
		}
		v.UV = uvs[idx]
	}

	if len(parts) > 2 && parts[2] != "" {
		idx, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return v, fmt.Errorf("bad normal index %q: %w", parts[2], err)
		}
		v.Normal = normals[idx]
	}

	return v, nil
}

// resolveIndex converts a 1-based (or negative, from-the-end) OBJ index into
// a 0-based slice index, validating bounds.
func resolveIndex(s string, length int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		n--
	} else if n < 0 {
		n = length + n
	} else {
		return 0, fmt.Errorf("index 0 is not valid")
	}
	if n < 0 || n >= length {
		return 0, fmt.Errorf("index out of range (resolved %d of %d)", n, length)
	}
	return n, nil
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	if len(fields) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(fields []string) (mgl32.Vec2, error) {
	if len(fields) < 2 {
		return mgl32.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	var v mgl32.Vec2
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec2{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}
