package models

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/taigrr/scanline/pkg/render"
)

// cubeSides lists each side's corners counter-clockwise as seen from
// outside, starting at the bottom-left.
var cubeSides = [6][4]mgl64.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // +Z
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // -Z
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // +X
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // -X
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // +Y
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // -Y
}

// cornerUV maps the corners of a side onto the whole texture.
var cornerUV = [4][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// NewCube creates a cube of the given edge length centred on the origin,
// with the whole texture mapped onto each of its six sides.
func NewCube(size float64, tex *render.Canvas) *Mesh {
	m := NewMesh("cube")
	m.Texture = tex
	half := size / 2

	for _, side := range cubeSides {
		base := len(m.Vertices)
		for i, p := range side {
			m.Vertices = append(m.Vertices, Vertex{
				Pos: p.Mul(half),
				U:   cornerUV[i][0],
				V:   cornerUV[i][1],
			})
		}
		m.Faces = append(m.Faces,
			Face{base, base + 1, base + 2},
			Face{base, base + 2, base + 3})
	}

	m.CalculateBounds()
	return m
}
