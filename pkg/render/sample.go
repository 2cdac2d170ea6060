package render

import (
	"fmt"
	"math"
	"strings"
)

// UVWrapMode determines how texture coordinates outside [0,1] are handled.
type UVWrapMode int

const (
	UVClamp UVWrapMode = iota // Saturate to the nearest edge
	UVWrap                    // Periodic wrap, 1.75 -> 0.75
)

// String implements fmt.Stringer and flag.Value.
func (m UVWrapMode) String() string {
	switch m {
	case UVClamp:
		return "clamp"
	case UVWrap:
		return "wrap"
	default:
		return fmt.Sprintf("UVWrapMode(%d)", int(m))
	}
}

// Set implements flag.Value.
func (m *UVWrapMode) Set(s string) error {
	mode, err := ParseUVWrapMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseUVWrapMode parses "clamp" or "wrap" (case insensitive).
func ParseUVWrapMode(s string) (UVWrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp":
		return UVClamp, nil
	case "wrap", "repeat":
		return UVWrap, nil
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrUnknownWrapMode)
}

// wrapCoord maps a coordinate into [0,1] according to mode.
func wrapCoord(coord float64, mode UVWrapMode) float64 {
	if math.IsNaN(coord) {
		return 0
	}
	switch mode {
	case UVWrap:
		if math.IsInf(coord, 0) {
			return 0
		}
		coord -= math.Floor(coord) // [0,1)
	default:
		coord = math.Max(0, math.Min(1, coord))
	}
	return coord
}

// Sample returns the pixel nearest to texture coordinate (u, v). The
// coordinate is first brought into [0,1] by mode, then scaled onto
// [0,Width()-1] x [0,Height()-1] and rounded. An empty canvas samples as 0.
func (c *Canvas) Sample(u, v float64, mode UVWrapMode) uint32 {
	if c.empty() {
		return 0
	}
	u = wrapCoord(u, mode)
	v = wrapCoord(v, mode)

	x := int(math.Round(u * float64(c.width-1)))
	y := int(math.Round(v * float64(c.height-1)))

	// Clamp to valid range
	x = min(max(x, 0), c.width-1)
	y = min(max(y, 0), c.height-1)

	return c.pix[c.Index(x, y)]
}
