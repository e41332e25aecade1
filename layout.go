package bubble

// OuterSize returns the size of the bubble that holds content of the given
// size. Horizontally the border is counted on both sides; vertically the
// arrow and three border widths are added: one for each edge of the body
// and one more at the arrow's base.
func OuterSize(content Size, padding Insets, borderWidth, arrowHeight float64) Size {
	padding = padding.sanitized()
	borderWidth = nonNegative(borderWidth)
	return Size{
		Width:  nonNegative(content.Width) + padding.Horizontal() + borderWidth*2,
		Height: nonNegative(content.Height) + padding.Vertical() + nonNegative(arrowHeight) + borderWidth*3,
	}
}

// ContentTopInset returns the distance from the top of the bubble to the
// top of its content. With the arrow on top the content sits below it;
// with the arrow at the bottom only the padding and border remain above.
func ContentTopInset(a ArrowAlignment, padding Insets, borderWidth, arrowHeight float64) float64 {
	top := nonNegative(padding.Top)
	borderWidth = nonNegative(borderWidth)
	if a == ArrowTop {
		return top + borderWidth*2 + nonNegative(arrowHeight)
	}
	return top + borderWidth
}

// Layout is the result of fitting a bubble around content.
type Layout struct {
	// Size is the outer size of the bubble, arrow included.
	Size Size
	// Content is where the content goes, relative to the bubble's top-left.
	Content Rect
	// Path is the bubble outline for a rectangle of Size.
	Path *Path
}

// Measure fits a bubble of style s around content of the given size.
//
// Content is centered horizontally and placed ContentTopInset from the
// top. Callers recompute the layout whenever the content size changes.
func Measure(content Size, s Style) Layout {
	s = s.sanitized()
	content = Size{Width: nonNegative(content.Width), Height: nonNegative(content.Height)}

	outer := OuterSize(content, s.InnerPadding, s.Border.Width, s.ArrowHeight)
	l := Layout{
		Size: outer,
		Content: Rect{
			X:      (outer.Width - content.Width) / 2,
			Y:      ContentTopInset(s.ArrowAlignment, s.InnerPadding, s.Border.Width, s.ArrowHeight),
			Width:  content.Width,
			Height: content.Height,
		},
		Path: Build(NewRect(outer.Width, outer.Height), s),
	}
	Logger().Debug("bubble: layout measured",
		"content_w", content.Width, "content_h", content.Height,
		"outer_w", outer.Width, "outer_h", outer.Height,
		"alignment", s.ArrowAlignment.String())
	return l
}
