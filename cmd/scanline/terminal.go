package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/scanline/pkg/render"
)

// spinStrength is the impulse applied per key press.
const spinStrength = 0.02

// runTerminal animates the scene full screen until the user quits. The
// canvas is one pixel per column and two per row.
func runTerminal(s *scene, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	scr, ok := any(term).(uv.Screen)
	if !ok {
		return errors.New("terminal does not expose a screen")
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	canvas := render.NewCanvas(width, height*2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Events are applied by the render loop so the scene is only touched
	// from one goroutine.
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(max(fps, 1))
	for {
		now := time.Now()

	drain:
		for {
			select {
			case <-ctx.Done():
				cleanup()
				return nil
			case ev := <-events:
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					canvas = render.NewCanvas(width, height*2)
				case uv.KeyPressEvent:
					if handleKey(s, ev) {
						cancel()
					}
				}
			default:
				break drain
			}
		}

		if err := s.draw(canvas); err != nil {
			cleanup()
			return fmt.Errorf("draw frame: %w", err)
		}
		s.step()

		canvas.Draw(scr, uv.Rect(0, 0, width, height))
		if err := flush(term); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// handleKey applies a key press to the scene and reports whether to quit.
func handleKey(s *scene, ev uv.KeyPressEvent) bool {
	switch {
	case ev.MatchString("escape", "ctrl+c", "q"):
		return true
	case ev.MatchString("a", "left"):
		s.yaw.Impulse(-spinStrength)
	case ev.MatchString("d", "right"):
		s.yaw.Impulse(spinStrength)
	case ev.MatchString("w", "up"):
		s.pitch.Impulse(-spinStrength)
	case ev.MatchString("s", "down"):
		s.pitch.Impulse(spinStrength)
	case ev.MatchString("space"):
		s.yaw.Impulse((rand.Float64() - 0.5) * 0.3)
		s.pitch.Impulse((rand.Float64() - 0.5) * 0.3)
	case ev.MatchString("c"):
		s.enabled["clear"] = !s.enabled["clear"]
	case ev.MatchString("r"):
		s.reset()
	}
	return false
}

// flush pushes the drawn cells to the terminal.
func flush(term any) error {
	switch t := term.(type) {
	case interface{ Display() error }:
		return t.Display()
	case interface{ Flush() error }:
		return t.Flush()
	}
	return errors.New("terminal cannot be flushed")
}
