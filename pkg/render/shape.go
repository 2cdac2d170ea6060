package render

import "slices"

// edge is a straight edge with its endpoints ordered by ascending y.
type edge struct {
	x0, y0 int
	x1, y1 int
}

func newEdge(ax, ay, bx, by int) edge {
	if ay > by {
		ax, ay, bx, by = bx, by, ax, ay
	}
	return edge{x0: ax, y0: ay, x1: bx, y1: by}
}

func (e edge) horizontal() bool {
	return e.y0 == e.y1
}

// xAt returns the edge's x position on row y, interpolated from the upper
// endpoint and truncated toward it. Every fill routine goes through this so
// that polygon and triangle fills agree pixel for pixel.
func (e edge) xAt(y int) int {
	if e.y1 == e.y0 {
		return e.x0
	}
	return e.x0 + (e.x1-e.x0)*(y-e.y0)/(e.y1-e.y0)
}

// t returns the fractional position of row y along the edge.
func (e edge) t(y int) float64 {
	if e.y1 == e.y0 {
		return 0
	}
	return float64(y-e.y0) / float64(e.y1-e.y0)
}

// polygonEdges returns the edges between consecutive vertices of a flat
// x,y coordinate list. A trailing odd coordinate is ignored.
func polygonEdges(points []int) []edge {
	n := len(points) / 2
	if n < 2 {
		return nil
	}
	edges := make([]edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, newEdge(points[2*i], points[2*i+1], points[2*i+2], points[2*i+3]))
	}
	return edges
}

// Polygon draws the outline of a polygon given as a flat list of x,y
// coordinates. If close is set and there are at least two vertices, the last
// vertex is also joined back to the first.
func (c *Canvas) Polygon(col ARGB, close bool, points []int) {
	n := len(points) / 2
	for i := 0; i+1 < n; i++ {
		c.Line(col, points[2*i], points[2*i+1], points[2*i+2], points[2*i+3])
	}
	if close && n >= 2 {
		last := 2 * (n - 1)
		c.Line(col, points[last], points[last+1], points[0], points[1])
	}
}

// FillPolygon fills a simple polygon using an even-odd scanline fill.
//
// The polygon must be closed: the last vertex should repeat the first.
// An edge crosses row y when its top y <= y < its bottom y; horizontal edges
// are drawn as spans on their own row.
func (c *Canvas) FillPolygon(col ARGB, points []int) {
	edges := polygonEdges(points)
	if len(edges) == 0 || c.empty() {
		return
	}

	ymin, ymax := edges[0].y0, edges[0].y1
	for _, e := range edges[1:] {
		ymin = min(ymin, e.y0)
		ymax = max(ymax, e.y1)
	}
	ymin = max(ymin, 0)
	ymax = min(ymax, c.height-1)

	p := col.Uint32()
	xs := make([]int, 0, len(edges))
	for y := ymin; y <= ymax; y++ {
		xs = xs[:0]
		for _, e := range edges {
			if e.horizontal() || y < e.y0 || y >= e.y1 {
				continue
			}
			xs = append(xs, e.xAt(y))
		}
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			c.hline(p, xs[i], y, xs[i+1])
		}

		for _, e := range edges {
			if e.horizontal() && e.y0 == y {
				c.hline(p, e.x0, y, e.x1)
			}
		}
	}
}
