package render

import (
	"cmp"
	"fmt"
	"slices"
)

// UVVertex is a screen position paired with a texture coordinate.
// U and V are conventionally in [0,1] but are not clamped.
type UVVertex struct {
	X, Y int
	U, V float64
}

// NewUVVertex creates a UVVertex.
func NewUVVertex(x, y int, u, v float64) UVVertex {
	return UVVertex{X: x, Y: y, U: u, V: v}
}

// uvEdge is an edge carrying texture coordinates at both endpoints.
type uvEdge struct {
	edge
	u0, v0 float64
	u1, v1 float64
}

func newUVEdge(a, b UVVertex) uvEdge {
	if a.Y > b.Y {
		a, b = b, a
	}
	return uvEdge{
		edge: edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y},
		u0:   a.U,
		v0:   a.V,
		u1:   b.U,
		v1:   b.V,
	}
}

// at returns the edge's x and interpolated (u, v) on row y.
func (e uvEdge) at(y int) (x int, u, v float64) {
	t := e.t(y)
	return e.xAt(y), e.u0 + (e.u1-e.u0)*t, e.v0 + (e.v1-e.v0)*t
}

// TexturedTriangle draws a triangle whose pixels are sampled from src.
//
// Texture coordinates are interpolated linearly (not perspective-correct)
// down both bounding edges and then across each span. Rows are covered
// exactly as in FillTriangle. A destination pixel is only replaced when the
// sampled source pixel has nonzero alpha. Triangles whose vertices share a
// row or a column draw nothing.
//
// src must not be c. ErrAliased is returned, without drawing, if it is.
func (c *Canvas) TexturedTriangle(src *Canvas, a, b, d UVVertex, mode UVWrapMode) error {
	if src == nil {
		return nil
	}
	if c.aliases(src) {
		Logger().Debug("textured triangle rejected: aliased source")
		return fmt.Errorf("textured triangle: %w", ErrAliased)
	}
	if c.empty() {
		return nil
	}

	v := [3]UVVertex{a, b, d}
	slices.SortStableFunc(v[:], func(a, b UVVertex) int { return cmp.Compare(a.Y, b.Y) })
	top, mid, bot := v[0], v[1], v[2]

	switch {
	case top.Y == bot.Y, top.X == mid.X && mid.X == bot.X:
		return nil
	case top.Y == mid.Y:
		c.downwardTriangleTextured(src, top, mid, bot, mode)
	case mid.Y == bot.Y:
		c.upwardTriangleTextured(src, top, mid, bot, mode)
	default:
		long := newUVEdge(top, bot)
		c.texturedSpans(src, newUVEdge(top, mid), long, top.Y, mid.Y, mode)
		c.texturedSpans(src, newUVEdge(mid, bot), long, mid.Y+1, bot.Y-1, mode)
	}
	return nil
}

// downwardTriangleTextured fills a flat-top textured triangle.
func (c *Canvas) downwardTriangleTextured(src *Canvas, tl, tr, bot UVVertex, mode UVWrapMode) {
	c.texturedSpans(src, newUVEdge(tl, bot), newUVEdge(tr, bot), tl.Y, bot.Y-1, mode)
}

// upwardTriangleTextured fills a flat-bottom textured triangle.
func (c *Canvas) upwardTriangleTextured(src *Canvas, top, bl, br UVVertex, mode UVWrapMode) {
	c.texturedSpans(src, newUVEdge(top, bl), newUVEdge(top, br), top.Y, bl.Y, mode)
}

// texturedSpans draws the textured span between two edges on every row in
// [y0, y1] that lies on the canvas.
func (c *Canvas) texturedSpans(src *Canvas, l, r uvEdge, y0, y1 int, mode UVWrapMode) {
	y0 = max(y0, 0)
	y1 = min(y1, c.height-1)
	for y := y0; y <= y1; y++ {
		xl, ul, vl := l.at(y)
		xr, ur, vr := r.at(y)
		if xl > xr {
			xl, ul, vl, xr, ur, vr = xr, ur, vr, xl, ul, vl
		}
		c.texturedSpan(src, y, xl, xr, ul, vl, ur, vr, mode)
	}
}

// texturedSpan samples src across row y from xl to xr inclusive. Requires
// xl <= xr and y on the canvas.
func (c *Canvas) texturedSpan(src *Canvas, y, xl, xr int, ul, vl, ur, vr float64, mode UVWrapMode) {
	if xr < 0 || xl >= c.width {
		return
	}

	var du, dv float64
	if n := xr - xl; n > 0 {
		du = (ur - ul) / float64(n)
		dv = (vr - vl) / float64(n)
	}

	// Advance (u, v) past pixels clipped off the left edge
	if xl < 0 {
		ul += du * float64(-xl)
		vl += dv * float64(-xl)
		xl = 0
	}
	xr = min(xr, c.width-1)

	row := c.pix[c.Index(xl, y) : c.Index(xr, y)+1]
	for i := range row {
		s := src.Sample(ul+du*float64(i), vl+dv*float64(i), mode)
		if opaque(s) {
			row[i] = s
		}
	}
}
