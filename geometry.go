package bubble

import "math"

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle of the given size at the origin.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// sanitized returns r with negative (or NaN) dimensions replaced by zero.
func (r Rect) sanitized() Rect {
	r.Width = nonNegative(r.Width)
	r.Height = nonNegative(r.Height)
	return r
}

// Insets are distances from each edge of a rectangle, in the
// leading/trailing vocabulary used for left-to-right layouts.
type Insets struct {
	Top, Leading, Bottom, Trailing float64
}

// UniformInsets returns insets with v on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Leading: v, Bottom: v, Trailing: v}
}

// Horizontal returns Leading + Trailing.
func (in Insets) Horizontal() float64 {
	return in.Leading + in.Trailing
}

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}

func (in Insets) sanitized() Insets {
	return Insets{
		Top:      nonNegative(in.Top),
		Leading:  nonNegative(in.Leading),
		Bottom:   nonNegative(in.Bottom),
		Trailing: nonNegative(in.Trailing),
	}
}

// nonNegative clamps v to zero when it is negative or NaN.
func nonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

// clamp limits v to [lo, hi]. When hi < lo the range collapses to zero.
func clamp(v, lo, hi float64) float64 {
	if hi < lo || math.IsNaN(v) {
		return 0
	}
	return min(max(v, lo), hi)
}
