package render

// FillRect draws a filled rectangle between two corners, inclusive. The
// corners may be given in any order. The rectangle is clipped to the canvas
// and skipped only when it lies entirely outside.
func (c *Canvas) FillRect(col ARGB, x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x2 < 0 || y2 < 0 || x1 >= c.width || y1 >= c.height {
		return
	}
	x1, x2 = max(x1, 0), min(x2, c.width-1)
	y1, y2 = max(y1, 0), min(y2, c.height-1)

	p := col.Uint32()
	for y := y1; y <= y2; y++ {
		row := c.pix[c.Index(x1, y) : c.Index(x2, y)+1]
		for i := range row {
			row[i] = p
		}
	}
}

// Rect draws a rectangle outline between two corners, inclusive.
func (c *Canvas) Rect(col ARGB, x1, y1, x2, y2 int) {
	c.HLine(col, x1, y1, x2)
	c.HLine(col, x1, y2, x2)
	c.VLine(col, x1, y1, y2)
	c.VLine(col, x2, y1, y2)
}
