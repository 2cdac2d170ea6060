package models

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/taigrr/scanline/pkg/render"
)

// View orients a mesh for projection. Yaw turns it about the vertical axis,
// Pitch about the horizontal one, both in radians. Zoom scales the fitted
// size; zero means 1.
type View struct {
	Yaw, Pitch float64
	Zoom       float64
}

// Triangle is a projected, front-facing face ready for rasterizing.
type Triangle struct {
	V     [3]render.UVVertex
	Depth float64 // mean view-space z; larger is nearer
}

// rotation returns the model-to-view rotation: yaw, then pitch.
func (v View) rotation() mgl64.Mat3 {
	return mgl64.Rotate3DX(v.Pitch).Mul3(mgl64.Rotate3DY(v.Yaw))
}

// Project maps the mesh orthographically onto a width x height canvas,
// centred and scaled so that it fits. Faces turned away from the viewer are
// dropped, and the rest are returned far to near for painter's-order drawing.
func (m *Mesh) Project(view View, width, height int) []Triangle {
	if len(m.Faces) == 0 || width <= 0 || height <= 0 {
		return nil
	}

	zoom := view.Zoom
	if zoom == 0 {
		zoom = 1
	}
	scale := zoom * 0.45 * float64(min(width, height))
	if r := m.Radius(); r > 0 {
		scale /= r
	}
	center := m.Center()
	rot := view.rotation()
	cx, cy := float64(width)/2, float64(height)/2

	type screenPoint struct{ x, y, z float64 }
	pts := make([]screenPoint, len(m.Vertices))
	for i, v := range m.Vertices {
		p := rot.Mul3x1(v.Pos.Sub(center))
		// Screen y grows downward
		pts[i] = screenPoint{cx + p.X()*scale, cy - p.Y()*scale, p.Z()}
	}

	tris := make([]Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		a, b, c := pts[f[0]], pts[f[1]], pts[f[2]]

		// Counter-clockwise in model space is clockwise on screen.
		cross := (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
		if cross >= 0 {
			continue
		}

		var t Triangle
		for i, idx := range f {
			p, v := pts[idx], m.Vertices[idx]
			t.V[i] = render.NewUVVertex(int(math.Round(p.x)), int(math.Round(p.y)), v.U, v.V)
		}
		t.Depth = (a.z + b.z + c.z) / 3
		tris = append(tris, t)
	}

	slices.SortStableFunc(tris, func(a, b Triangle) int { return cmp.Compare(a.Depth, b.Depth) })
	return tris
}

// Draw projects the mesh and rasterizes it onto dst with its texture. A mesh
// without a texture is filled with fallback instead.
func (m *Mesh) Draw(dst *render.Canvas, view View, mode render.UVWrapMode, fallback render.ARGB) error {
	for _, t := range m.Project(view, dst.Width(), dst.Height()) {
		if m.Texture == nil {
			dst.FillTriangle(fallback, t.V[0].X, t.V[0].Y, t.V[1].X, t.V[1].Y, t.V[2].X, t.V[2].Y)
			continue
		}
		if err := dst.TexturedTriangle(m.Texture, t.V[0], t.V[1], t.V[2], mode); err != nil {
			return err
		}
	}
	return nil
}
