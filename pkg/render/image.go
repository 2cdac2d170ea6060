package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp" // Register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return ARGBModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color { return ARGBFromUint32(c.PixelAt(x, y)) }

// Set implements draw.Image.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, ARGBModel.Convert(col).(ARGB))
}

// ToImage converts the canvas to a standard Go image.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	for y := range c.height {
		for x := range c.width {
			p := ARGBFromUint32(c.pix[c.Index(x, y)])
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}

// SavePNG saves the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// CanvasFromImage copies an image into a new canvas of the given size,
// scaling with nearest-neighbour sampling when the sizes differ. A
// non-positive width or height keeps the image's own size.
func CanvasFromImage(img image.Image, width, height int) *Canvas {
	b := img.Bounds()
	if width <= 0 || height <= 0 {
		width, height = b.Dx(), b.Dy()
	}
	c := NewCanvas(width, height)
	if width == b.Dx() && height == b.Dy() {
		xdraw.Copy(c, image.Point{}, img, b, xdraw.Src, nil)
	} else {
		xdraw.NearestNeighbor.Scale(c, c.Bounds(), img, b, xdraw.Src, nil)
	}
	return c
}

// LoadCanvas decodes an image file (PNG, JPEG, GIF, BMP, TIFF or WebP) into
// a canvas. See CanvasFromImage for the meaning of width and height.
func LoadCanvas(path string, width, height int) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c := CanvasFromImage(img, width, height)
	Logger().Debug("loaded canvas",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("width", c.width),
		slog.Int("height", c.height))
	return c, nil
}

// NewCheckerCanvas creates a procedural checkerboard.
func NewCheckerCanvas(width, height, checkSize int, c1, c2 ARGB) *Canvas {
	c := NewCanvas(width, height)
	checkSize = max(checkSize, 1)
	p1, p2 := c1.Uint32(), c2.Uint32()
	for y := range c.height {
		for x := range c.width {
			if (x/checkSize+y/checkSize)%2 == 0 {
				c.pix[c.Index(x, y)] = p1
			} else {
				c.pix[c.Index(x, y)] = p2
			}
		}
	}
	return c
}
