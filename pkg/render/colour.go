package render

import "image/color"

// ARGB is a non-premultiplied 32-bit colour with 8 bits per channel.
type ARGB struct {
	A, R, G, B uint8
}

// NewARGB creates a colour from its alpha, red, green and blue channels.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB{A: a, R: r, G: g, B: b}
}

// RGB creates an opaque colour.
func RGB(r, g, b uint8) ARGB {
	return ARGB{A: 255, R: r, G: g, B: b}
}

// ARGBFromUint32 decodes a packed pixel.
func ARGBFromUint32(p uint32) ARGB {
	return ARGB{
		A: uint8(p >> 24),
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// Uint32 packs the colour as a<<24 | r<<16 | g<<8 | b, the pixel format
// stored in a Canvas.
func (c ARGB) Uint32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// opaque reports whether a packed pixel passes the binary transparency test.
func opaque(p uint32) bool {
	return p>>24 != 0
}

// ARGBModel converts any color.Color to ARGB.
var ARGBModel = color.ModelFunc(argbModel)

func argbModel(c color.Color) color.Color {
	if a, ok := c.(ARGB); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB{A: n.A, R: n.R, G: n.G, B: n.B}
}

// Colors for convenience
var (
	Transparent = ARGB{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Gray        = RGB(128, 128, 128)
)
