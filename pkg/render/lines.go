package render

// HLine draws a horizontal line on row y covering the closed interval
// between x1 and x2, in either order. The line is clipped to the canvas.
func (c *Canvas) HLine(col ARGB, x1, y, x2 int) {
	c.hline(col.Uint32(), x1, y, x2)
}

func (c *Canvas) hline(p uint32, x1, y, x2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y < 0 || y >= c.height || x2 < 0 || x1 >= c.width {
		return
	}
	x1 = max(x1, 0)
	x2 = min(x2, c.width-1)

	row := c.pix[c.Index(x1, y) : c.Index(x2, y)+1]
	for i := range row {
		row[i] = p
	}
}

// VLine draws a vertical line in column x covering the closed interval
// between y1 and y2, in either order. The line is clipped to the canvas.
func (c *Canvas) VLine(col ARGB, x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x < 0 || x >= c.width || y2 < 0 || y1 >= c.height {
		return
	}
	y1 = max(y1, 0)
	y2 = min(y2, c.height-1)

	p := col.Uint32()
	for idx := c.Index(x, y1); y1 <= y2; y1++ {
		c.pix[idx] = p
		idx += c.width
	}
}

// Line draws a line between (x1, y1) and (x2, y2). Axis-aligned lines take
// the HLine/VLine fast path, everything else goes through LineBresenham.
func (c *Canvas) Line(col ARGB, x1, y1, x2, y2 int) {
	switch {
	case x1 == x2:
		c.VLine(col, x1, y1, y2)
	case y1 == y2:
		c.HLine(col, x1, y1, x2)
	default:
		c.LineBresenham(col, x1, y1, x2, y2)
	}
}

// LineBresenham draws a line using Bresenham's integer algorithm.
//
// Along each axis, a line whose endpoints are both off the same side of the
// canvas is skipped. Otherwise an off-canvas endpoint is moved onto the last
// valid pixel of that axis before walking. Each axis is clamped on its own,
// so a line with an endpoint off the canvas does not keep its slope.
func (c *Canvas) LineBresenham(col ARGB, x1, y1, x2, y2 int) {
	if c.empty() {
		return
	}
	var ok bool
	if x1, x2, ok = clipAxis(x1, x2, c.width); !ok {
		return
	}
	if y1, y2, ok = clipAxis(y1, y2, c.height); !ok {
		return
	}

	p := col.Uint32()
	if abs(y2-y1) < abs(x2-x1) {
		if x1 > x2 {
			c.plotLineLow(p, x2, y2, x1, y1)
		} else {
			c.plotLineLow(p, x1, y1, x2, y2)
		}
	} else if y1 > y2 {
		c.plotLineHigh(p, x2, y2, x1, y1)
	} else {
		c.plotLineHigh(p, x1, y1, x2, y2)
	}
}

// clipAxis clamps both ends of a segment's projection onto [0, size-1].
// It reports false when both ends are outside on the same side.
func clipAxis(a, b, size int) (int, int, bool) {
	if (a < 0 && b < 0) || (a >= size && b >= size) {
		return a, b, false
	}
	return clampInt(a, 0, size-1), clampInt(b, 0, size-1), true
}

// plotLineLow walks x for slopes with |dy| < |dx|. Requires x1 <= x2.
func (c *Canvas) plotLineLow(p uint32, x1, y1, x2, y2 int) {
	dx := x2 - x1
	dy := y2 - y1
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y1
	for x := x1; x <= x2; x++ {
		if y < 0 || y >= c.height {
			break
		}
		c.pix[c.Index(x, y)] = p
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// plotLineHigh walks y for slopes with |dy| >= |dx|. Requires y1 <= y2.
func (c *Canvas) plotLineHigh(p uint32, x1, y1, x2, y2 int) {
	dx := x2 - x1
	dy := y2 - y1
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x1
	for y := y1; y <= y2; y++ {
		if x < 0 || x >= c.width {
			break
		}
		c.pix[c.Index(x, y)] = p
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
