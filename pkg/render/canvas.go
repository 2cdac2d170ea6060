// Package render provides a software rasterizer that draws lines, rectangles,
// polygons and textured triangles into a packed ARGB pixel buffer.
//
// A Canvas is owned by a single caller. Drawing methods mutate it in place,
// run to completion and are not safe for concurrent use on the same Canvas.
// Coordinates outside the canvas are clipped or skipped, never an error.
package render

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// Canvas is a fixed-size buffer of packed ARGB pixels.
type Canvas struct {
	width  int
	height int
	pix    []uint32 // Row-major pixel data, len == width*height
}

// NewCanvas creates a canvas with every pixel set to transparent black.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Index returns the buffer index of pixel (x, y).
// No bounds checking is performed.
func (c *Canvas) Index(x, y int) int {
	return y*c.width + x
}

// Pixels returns the backing pixel slice for direct access.
func (c *Canvas) Pixels() []uint32 {
	return c.pix
}

// Bytes returns the pixel storage viewed as bytes in native (little-endian
// on all supported targets) order, for handing to a presentation layer
// without copying. Writes through the slice modify the canvas.
func (c *Canvas) Bytes() []byte {
	if len(c.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(c.pix))), len(c.pix)*4)
}

// inBounds reports whether (x, y) addresses a pixel.
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// empty reports whether the canvas has no pixels.
func (c *Canvas) empty() bool {
	return c.width == 0 || c.height == 0
}

// PixelAt returns the packed pixel at (x, y), or 0 if out of bounds.
func (c *Canvas) PixelAt(x, y int) uint32 {
	if !c.inBounds(x, y) {
		return 0
	}
	return c.pix[c.Index(x, y)]
}

// SetPixel sets the pixel at (x, y). Out of bounds writes are ignored.
func (c *Canvas) SetPixel(x, y int, col ARGB) {
	if !c.inBounds(x, y) {
		return
	}
	c.pix[c.Index(x, y)] = col.Uint32()
}

// Clear fills the whole canvas with a colour.
func (c *Canvas) Clear(col ARGB) {
	p := col.Uint32()
	for i := range c.pix {
		c.pix[i] = p
	}
}

// LoadPixels replaces the canvas contents with src. The length of src must
// equal Width()*Height(); otherwise the canvas is left unchanged and an error
// wrapping ErrSizeMismatch is returned.
func (c *Canvas) LoadPixels(src []uint32) error {
	if len(src) != len(c.pix) {
		Logger().Debug("load pixels rejected",
			slog.Int("got", len(src)),
			slog.Int("want", len(c.pix)))
		return fmt.Errorf("load %d pixels into %dx%d canvas: %w", len(src), c.width, c.height, ErrSizeMismatch)
	}
	copy(c.pix, src)
	return nil
}

// aliases reports whether src shares pixel storage with c.
func (c *Canvas) aliases(src *Canvas) bool {
	if c == src {
		return true
	}
	if len(c.pix) == 0 || len(src.pix) == 0 {
		return false
	}
	return unsafe.SliceData(c.pix) == unsafe.SliceData(src.pix)
}

// DrawCanvas copies src onto c with its top-left corner at (x, y), clipped
// to c. A source pixel replaces the destination only if its alpha is
// nonzero; partially transparent pixels are not blended.
//
// src must not be c. ErrAliased is returned, without drawing, if it is.
func (c *Canvas) DrawCanvas(src *Canvas, x, y int) error {
	if src == nil {
		return nil
	}
	if c.aliases(src) {
		Logger().Debug("draw canvas rejected: aliased source")
		return fmt.Errorf("draw canvas: %w", ErrAliased)
	}

	// Destination rectangle [dx0, dx1) x [dy0, dy1)
	dx0, dy0 := max(x, 0), max(y, 0)
	dx1, dy1 := min(x+src.width, c.width), min(y+src.height, c.height)
	if dx0 >= dx1 || dy0 >= dy1 {
		return nil
	}

	for dy := dy0; dy < dy1; dy++ {
		dst := c.pix[c.Index(dx0, dy):c.Index(dx1, dy)]
		row := src.pix[src.Index(dx0-x, dy-y):]
		for i := range dst {
			if p := row[i]; opaque(p) {
				dst[i] = p
			}
		}
	}
	return nil
}
