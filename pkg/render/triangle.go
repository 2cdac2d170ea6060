package render

import (
	"cmp"
	"slices"
)

type point struct {
	x, y int
}

// FillTriangle draws a filled triangle.
//
// Vertices are sorted by y. A flat-top triangle is filled downward from its
// top edge, a flat-bottom one upward from its apex, and any other triangle is
// split at its middle vertex where it meets the long edge. Each row spans the
// x positions of the two bounding edges as computed by FillPolygon, so for a
// closed triangle both produce the same pixels: the top row and a flat bottom
// row are included, a pointed bottom apex is not.
//
// Degenerate triangles whose vertices share a row or a column are drawn as a
// single horizontal or vertical line.
func (c *Canvas) FillTriangle(col ARGB, x1, y1, x2, y2, x3, y3 int) {
	if c.empty() {
		return
	}
	v := [3]point{{x1, y1}, {x2, y2}, {x3, y3}}
	slices.SortStableFunc(v[:], func(a, b point) int { return cmp.Compare(a.y, b.y) })
	top, mid, bot := v[0], v[1], v[2]

	p := col.Uint32()
	switch {
	case top.y == bot.y:
		c.hline(p, min(x1, x2, x3), top.y, max(x1, x2, x3))
	case top.x == mid.x && mid.x == bot.x:
		c.VLine(col, top.x, top.y, bot.y)
	case top.y == mid.y:
		c.downwardTriangle(p, top, mid, bot)
	case mid.y == bot.y:
		c.upwardTriangle(p, top, mid, bot)
	default:
		// The split row belongs to the upper half; the lower half starts one
		// row below it.
		long := newEdge(top.x, top.y, bot.x, bot.y)
		c.fillBetween(p, newEdge(top.x, top.y, mid.x, mid.y), long, top.y, mid.y)
		c.fillBetween(p, newEdge(mid.x, mid.y, bot.x, bot.y), long, mid.y+1, bot.y-1)
	}
}

// downwardTriangle fills a flat-top triangle from its top edge down to the
// row above the bottom apex.
func (c *Canvas) downwardTriangle(p uint32, tl, tr, bot point) {
	c.fillBetween(p,
		newEdge(tl.x, tl.y, bot.x, bot.y),
		newEdge(tr.x, tr.y, bot.x, bot.y),
		tl.y, bot.y-1)
}

// upwardTriangle fills a flat-bottom triangle from its apex down to and
// including the base row.
func (c *Canvas) upwardTriangle(p uint32, top, bl, br point) {
	c.fillBetween(p,
		newEdge(top.x, top.y, bl.x, bl.y),
		newEdge(top.x, top.y, br.x, br.y),
		top.y, bl.y)
}

// fillBetween draws a span between two edges on every row in [y0, y1] that
// lies on the canvas.
func (c *Canvas) fillBetween(p uint32, l, r edge, y0, y1 int) {
	y0 = max(y0, 0)
	y1 = min(y1, c.height-1)
	for y := y0; y <= y1; y++ {
		c.hline(p, l.xAt(y), y, r.xAt(y))
	}
}
