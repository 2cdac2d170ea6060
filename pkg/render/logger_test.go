package render

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	c := NewCanvas(2, 2)
	_ = c.LoadPixels([]uint32{1, 2, 3})
	_ = c.DrawCanvas(c, 0, 0)

	out := buf.String()
	for _, want := range []string{"load pixels rejected", "got=3", "want=4", "aliased source"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	c.FillRect(Red, 0, 0, 1, 1)
	c.Line(Red, 0, 0, 1, 1)
	if buf.Len() != 0 {
		t.Errorf("drawing primitives logged: %s", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
