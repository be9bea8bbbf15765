package pipeline

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AssembleTriangles groups a shaded vertex stream into consecutive
// non-overlapping triples, in mesh order. Trailing vertices that cannot form
// a complete triangle are dropped silently.
//
// Parameters:
//   - vertices: the shaded vertex stream
//
// Returns:
//   - [][3]ShadedVertex: the assembled triangles
func AssembleTriangles(vertices []ShadedVertex) [][3]ShadedVertex {
	triangles := make([][3]ShadedVertex, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		triangles = append(triangles, [3]ShadedVertex{vertices[i], vertices[i+1], vertices[i+2]})
	}
	return triangles
}

// Rasterize converts one screen-space triangle into fragments covering its
// footprint. Coverage is evaluated at pixel centers; a pixel is covered when
// all three barycentric weights lie in [0, 1] (edges inclusive). Degenerate
// triangles (zero area) produce no fragments. Depth and all attributes are
// interpolated with affine barycentric weights; there is no perspective
// correction.
//
// Parameters:
//   - a, b, c: the triangle's shaded vertices
//   - width, height: framebuffer bounds used to clamp the scan region
//
// Returns:
//   - []Fragment: the covered fragments (nil for degenerate triangles)
func Rasterize(a, b, c ShadedVertex, width, height int) []Fragment {
	ax, ay := a.ScreenPosition.X(), a.ScreenPosition.Y()
	bx, by := b.ScreenPosition.X(), b.ScreenPosition.Y()
	cx, cy := c.ScreenPosition.X(), c.ScreenPosition.Y()

	// Doubled signed area; zero means the points are colinear or coincident.
	area := (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
	if area == 0 {
		return nil
	}
	invArea := 1 / area

	minX := clampInt(int(math.Floor(float64(min3(ax, bx, cx)))), 0, width-1)
	maxX := clampInt(int(math.Ceil(float64(max3(ax, bx, cx)))), 0, width-1)
	minY := clampInt(int(math.Floor(float64(min3(ay, by, cy)))), 0, height-1)
	maxY := clampInt(int(math.Ceil(float64(max3(ay, by, cy)))), 0, height-1)

	fragments := make([]Fragment, 0, (maxX-minX+1)*(maxY-minY+1)/2)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			// Affine barycentric weights relative to the signed area; the
			// sign cancels, so coverage is winding-independent.
			w0 := ((by-cy)*(px-cx) + (cx-bx)*(py-cy)) * invArea
			w1 := ((cy-ay)*(px-cx) + (ax-cx)*(py-cy)) * invArea
			w2 := 1 - w0 - w1

			if w0 < 0 || w0 > 1 || w1 < 0 || w1 > 1 || w2 < 0 || w2 > 1 {
				continue
			}

			depth := w0*a.ScreenPosition.Z() + w1*b.ScreenPosition.Z() + w2*c.ScreenPosition.Z()

			normal := a.Normal.Mul(w0).Add(b.Normal.Mul(w1)).Add(c.Normal.Mul(w2))
			if normal.Len() > 0 {
				normal = normal.Normalize()
			}

			fragments = append(fragments, Fragment{
				X:     x,
				Y:     y,
				Depth: depth,
				WorldPosition: a.WorldPosition.Mul(w0).
					Add(b.WorldPosition.Mul(w1)).
					Add(c.WorldPosition.Mul(w2)),
				Normal: normal,
				UV: mgl32.Vec2{
					w0*a.UV.X() + w1*b.UV.X() + w2*c.UV.X(),
					w0*a.UV.Y() + w1*b.UV.Y() + w2*c.UV.Y(),
				},
				Intensity: 1,
			})
		}
	}

	return fragments
}

func min3(a, b, c float32) float32 {
	return min(a, min(b, c))
}

func max3(a, b, c float32) float32 {
	return max(a, max(b, c))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
