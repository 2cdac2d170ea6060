// scanline - software rasterizer demos in the terminal
// Draws the canvas primitives into an ARGB pixel buffer and shows it with
// half-block characters, or writes a single frame to a PNG file.
//
// Controls:
//
//	A/D or Left/Right - Spin the rotating demos
//	W/S or Up/Down    - Tilt the model
//	Space             - Random spin
//	C                 - Toggle clearing between frames
//	R                 - Reset
//	Esc, Q            - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/taigrr/scanline/pkg/render"
)

var (
	canvasWidth  = flag.Int("width", 256, "Canvas width for -out")
	canvasHeight = flag.Int("height", 256, "Canvas height for -out")
	targetFPS    = flag.Int("fps", 60, "Target FPS")
	demoList     = flag.String("demo", "clear,fill_triangle_rot,polygon,rotating_line", "Comma separated demos to run, or \"all\"")
	texturePath  = flag.String("texture", "", "Path to sprite/texture image (PNG/JPEG/GIF/BMP/TIFF/WebP)")
	modelPath    = flag.String("model", "", "Path to a .glb/.gltf model for the model demo")
	bgColor      = flag.String("bg", "0,0,0", "Clear color (R,G,B)")
	outPath      = flag.String("out", "", "Write frames headless and save the last one as PNG")
	frameCount   = flag.Int("frames", 1, "Frames to advance before saving with -out")
	verbose      = flag.Bool("v", false, "Enable debug logging")
	wrapMode     = render.UVWrap
)

func main() {
	flag.Var(&wrapMode, "wrap", "Texture wrap mode (clamp or wrap)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scanline - software rasterizer demos\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scanline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDemos:\n  %s\n", strings.Join(demoNames(), ", "))
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Spin\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Tilt model\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  C           - Toggle clear\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	bg, err := parseRGB(*bgColor)
	if err != nil {
		return fmt.Errorf("parse -bg: %w", err)
	}
	enabled, err := parseDemos(*demoList)
	if err != nil {
		return err
	}

	s := newScene(enabled, bg, wrapMode, *targetFPS)
	if err := s.loadAssets(*texturePath, *modelPath); err != nil {
		return err
	}

	if *outPath != "" {
		return renderHeadless(s, *canvasWidth, *canvasHeight, *frameCount, *outPath, logger)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use -out to render to a file")
	}
	return runTerminal(s, *targetFPS)
}

// renderHeadless advances the scene frames times on a width x height canvas
// and saves the result.
func renderHeadless(s *scene, width, height, frames int, path string, logger *slog.Logger) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	c := render.NewCanvas(width, height)
	for range max(frames, 1) {
		if err := s.draw(c); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		s.step()
	}
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	logger.Info("saved frame",
		slog.String("path", path),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("frames", max(frames, 1)))
	return nil
}

// parseRGB parses "R,G,B" into an opaque colour.
func parseRGB(s string) (render.ARGB, error) {
	var r, g, b uint8
	n, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b)
	if err != nil {
		return render.ARGB{}, err
	}
	if n != 3 {
		return render.ARGB{}, errors.New("want R,G,B")
	}
	return render.RGB(r, g, b), nil
}
