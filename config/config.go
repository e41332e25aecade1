// Package config loads bubble styles from TOML files.
//
// Every key is optional; absent keys keep the value of the base style,
// which is bubble.DefaultStyle() for Load.
//
//	arrow_alignment = "top"
//	arrow_height    = 6.0
//	background      = "#fffbe6"
//
//	[arrow_offset]
//	x = 12.0
//
//	[border]
//	radius = 8.0
//	width  = 1.5
//	color  = "#333333"
//
//	[padding]
//	top      = 4.0
//	leading  = 8.0
//	bottom   = 4.0
//	trailing = 8.0
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/bubble"
	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk shape of a style file.
type File struct {
	ArrowAlignment *bubble.ArrowAlignment `toml:"arrow_alignment,omitempty"`
	ArrowHeight    *float64               `toml:"arrow_height,omitempty"`
	ArrowOffset    *Offset                `toml:"arrow_offset,omitempty"`
	Background     *bubble.RGBA           `toml:"background,omitempty"`
	Border         *Border                `toml:"border,omitempty"`
	Padding        *Padding               `toml:"padding,omitempty"`
}

// Offset is the [arrow_offset] table.
type Offset struct {
	X *float64 `toml:"x,omitempty"`
	Y *float64 `toml:"y,omitempty"`
}

// Border is the [border] table.
type Border struct {
	Radius *float64     `toml:"radius,omitempty"`
	Width  *float64     `toml:"width,omitempty"`
	Color  *bubble.RGBA `toml:"color,omitempty"`
}

// Padding is the [padding] table.
type Padding struct {
	Top      *float64 `toml:"top,omitempty"`
	Leading  *float64 `toml:"leading,omitempty"`
	Bottom   *float64 `toml:"bottom,omitempty"`
	Trailing *float64 `toml:"trailing,omitempty"`
}

// Load reads the style file at path on top of bubble.DefaultStyle().
func Load(path string) (bubble.Style, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return bubble.Style{}, fmt.Errorf("config: %w", err)
	}
	s, err := Decode(bytes.NewReader(data), bubble.DefaultStyle())
	if err != nil {
		return bubble.Style{}, fmt.Errorf("config: %s: %w", path, err)
	}
	bubble.Logger().Debug("config: style loaded", "path", path)
	return s, nil
}

// Decode reads a style file from r and applies it to base.
// Unknown keys are rejected.
func Decode(r io.Reader, base bubble.Style) (bubble.Style, error) {
	var f File
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return bubble.Style{}, err
	}
	return f.Apply(base), nil
}

// Apply returns base with every field present in f replaced.
func (f File) Apply(base bubble.Style) bubble.Style {
	s := base
	if f.ArrowAlignment != nil {
		s = s.WithArrowAlignment(*f.ArrowAlignment)
	}
	if f.ArrowHeight != nil {
		s = s.WithArrowHeight(*f.ArrowHeight)
	}
	if o := f.ArrowOffset; o != nil {
		off := s.ArrowOffset
		setIf(&off.X, o.X)
		setIf(&off.Y, o.Y)
		s = s.WithArrowOffset(off.X, off.Y)
	}
	if f.Background != nil {
		s = s.WithBackground(*f.Background)
	}
	if b := f.Border; b != nil {
		border := s.Border
		if b.Radius != nil {
			border.Radius = *b.Radius
		}
		if b.Width != nil {
			border.Width = *b.Width
		}
		if b.Color != nil {
			border.Color = *b.Color
		}
		s = s.WithBorder(border)
	}
	if p := f.Padding; p != nil {
		in := s.InnerPadding
		setIf(&in.Top, p.Top)
		setIf(&in.Leading, p.Leading)
		setIf(&in.Bottom, p.Bottom)
		setIf(&in.Trailing, p.Trailing)
		s = s.WithInnerPadding(in)
	}
	return s
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// FromStyle returns a File that describes s completely.
func FromStyle(s bubble.Style) File {
	return File{
		ArrowAlignment: &s.ArrowAlignment,
		ArrowHeight:    &s.ArrowHeight,
		ArrowOffset:    &Offset{X: &s.ArrowOffset.X, Y: &s.ArrowOffset.Y},
		Background:     &s.Background,
		Border: &Border{
			Radius: &s.Border.Radius,
			Width:  &s.Border.Width,
			Color:  &s.Border.Color,
		},
		Padding: &Padding{
			Top:      &s.InnerPadding.Top,
			Leading:  &s.InnerPadding.Leading,
			Bottom:   &s.InnerPadding.Bottom,
			Trailing: &s.InnerPadding.Trailing,
		},
	}
}

// Encode writes s to w as a complete style file.
func Encode(w io.Writer, s bubble.Style) error {
	if err := toml.NewEncoder(w).Encode(FromStyle(s)); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
