package bubble

import (
	"errors"
	"fmt"
	"strings"
)

// ArrowAlignment selects the bubble edge the arrow protrudes from.
type ArrowAlignment int

const (
	// ArrowBottom places the arrow on the bottom edge, pointing down.
	ArrowBottom ArrowAlignment = iota
	// ArrowTop places the arrow on the top edge, pointing up.
	ArrowTop
)

// ErrUnknownAlignment is returned when an alignment name cannot be parsed.
var ErrUnknownAlignment = errors.New("bubble: unknown arrow alignment")

// Horizontal reports whether the arrow sits on a horizontal edge.
// Every current alignment does.
func (a ArrowAlignment) Horizontal() bool {
	return a == ArrowTop || a == ArrowBottom
}

// Vertical reports whether the arrow sits on a vertical (leading or
// trailing) edge. No such alignment exists yet.
func (a ArrowAlignment) Vertical() bool {
	return false
}

// String returns "top" or "bottom".
func (a ArrowAlignment) String() string {
	switch a {
	case ArrowTop:
		return "top"
	case ArrowBottom:
		return "bottom"
	default:
		return fmt.Sprintf("ArrowAlignment(%d)", int(a))
	}
}

// ParseArrowAlignment parses "top" or "bottom" (case-insensitive).
func ParseArrowAlignment(s string) (ArrowAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return ArrowTop, nil
	case "bottom":
		return ArrowBottom, nil
	default:
		return ArrowBottom, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a ArrowAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ArrowAlignment) UnmarshalText(text []byte) error {
	v, err := ParseArrowAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Border describes the bubble's outline stroke.
// Radius and Width shape the path; Color only matters when rendering.
type Border struct {
	Radius float64
	Width  float64
	Color  RGBA
}

// DefaultBorder returns a black border of width 2 with corner radius 5.
func DefaultBorder() Border {
	return Border{Radius: 5, Width: 2, Color: Black}
}

// Style is the complete bubble configuration.
//
// Style is a value type. The With methods return a modified copy and never
// change the receiver, so a Style can be shared freely between goroutines.
type Style struct {
	// ArrowAlignment is the edge the arrow protrudes from. Default: ArrowBottom.
	ArrowAlignment ArrowAlignment

	// ArrowHeight is the distance from the bubble body to the arrow tip.
	// The arrow's base is 2.8 times as wide. Default: 5.
	ArrowHeight float64

	// ArrowOffset moves the arrow away from the center of its edge.
	// Positive X moves it right. The offset is clamped when the path is
	// built so the arrow keeps clear of the rounded corners.
	// Y is reserved for leading/trailing alignments and is ignored.
	ArrowOffset Point

	// InnerPadding is the space between the border and the content.
	// Default: 5 on every edge.
	InnerPadding Insets

	// Background fills the bubble. Default: Transparent.
	Background RGBA

	// Border is the outline stroke. Default: DefaultBorder().
	Border Border
}

// DefaultStyle returns the default bubble configuration.
func DefaultStyle() Style {
	return Style{
		ArrowAlignment: ArrowBottom,
		ArrowHeight:    5,
		ArrowOffset:    Point{},
		InnerPadding:   UniformInsets(5),
		Background:     Transparent,
		Border:         DefaultBorder(),
	}
}

// WithArrowAlignment returns a copy of the Style with the given arrow alignment.
func (s Style) WithArrowAlignment(a ArrowAlignment) Style {
	s.ArrowAlignment = a
	return s
}

// WithArrowHeight returns a copy of the Style with the given arrow height.
func (s Style) WithArrowHeight(h float64) Style {
	s.ArrowHeight = h
	return s
}

// WithArrowOffset returns a copy of the Style with the arrow offset set to (x, y).
func (s Style) WithArrowOffset(x, y float64) Style {
	s.ArrowOffset = Pt(x, y)
	return s
}

// WithBackground returns a copy of the Style with the given background color.
func (s Style) WithBackground(c RGBA) Style {
	s.Background = c
	return s
}

// WithBorder returns a copy of the Style with the given border.
func (s Style) WithBorder(b Border) Style {
	s.Border = b
	return s
}

// WithInnerPadding returns a copy of the Style with the given inner padding.
func (s Style) WithInnerPadding(in Insets) Style {
	s.InnerPadding = in
	return s
}

// sanitized returns the style with every length clamped to be non-negative.
func (s Style) sanitized() Style {
	s.ArrowHeight = nonNegative(s.ArrowHeight)
	s.Border.Radius = nonNegative(s.Border.Radius)
	s.Border.Width = nonNegative(s.Border.Width)
	s.InnerPadding = s.InnerPadding.sanitized()
	return s
}
