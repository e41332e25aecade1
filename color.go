package bubble

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// IsTransparent reports whether the color has zero alpha.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c RGBA) Hex() string {
	s := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A >= 1 {
		return s
	}
	return fmt.Sprintf("%s%02x", s, uint8(clamp255(c.A*255)))
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional). The named colors "transparent", "black" and "white" are also
// accepted.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "transparent", "clear":
		return Transparent, nil
	case "black":
		return Black, nil
	case "white":
		return White, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("bubble: invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("bubble: invalid color %q: %w", s, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGBA) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func clamp255(v float64) float64 {
	return math.Max(0, math.Min(255, math.Round(v)))
}
