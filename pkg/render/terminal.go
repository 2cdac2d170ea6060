package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw presents the canvas on a terminal screen.
// Each terminal row shows two canvas rows using the upper half block (▀) with
// fg = top pixel and bg = bottom pixel, so the canvas height should be twice
// the number of rows in area.
func (c *Canvas) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < c.width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: pixelColor(c.PixelAt(x, topY)),
					Bg: pixelColor(c.PixelAt(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// pixelColor converts a packed pixel for terminal output. Fully transparent
// pixels map to nil, which leaves the terminal's default colour.
func pixelColor(p uint32) color.Color {
	if !opaque(p) {
		return nil
	}
	return ARGBFromUint32(p)
}
