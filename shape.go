package bubble

import "math"

// Arrow silhouette ratios. They are tuned by eye and must stay exactly as
// they are for the outline to keep its shape.
const (
	// ArrowWidthRatio is the arrow base width relative to its height.
	ArrowWidthRatio = 2.8
	// ArrowPeakXRatio places the tip's shoulders, relative to half the base width.
	ArrowPeakXRatio = 0.149
	// ArrowPeakYRatio places the tip's shoulders, relative to the arrow height.
	ArrowPeakYRatio = 0.0864
	// ArrowCurveXRatio places the base curve's end, relative to half the base width.
	ArrowCurveXRatio = 0.600
	// ArrowCurveYRatio places the base curve's end, relative to the base height.
	ArrowCurveYRatio = 0.750
	// ArrowControlXRatio places the base curve's control point, relative to half the base width.
	ArrowControlXRatio = 0.750
	// ArrowApexYRatio lifts the tip's control point above the shoulders,
	// relative to the arrow height.
	ArrowApexYRatio = -0.10
)

// CornerMargin is the minimum horizontal clearance kept between the arrow
// base and the side edges, leaving room for the rounded corners.
const CornerMargin = 6.0

// cornerArc is the angular span of one rounded corner.
type cornerArc struct {
	start, end float64
}

var (
	arcTopTrailing    = cornerArc{start: -math.Pi * 0.5, end: 0}
	arcBottomTrailing = cornerArc{start: 0, end: math.Pi * 0.5}
	arcBottomLeading  = cornerArc{start: math.Pi * 0.5, end: math.Pi}
	arcTopLeading     = cornerArc{start: math.Pi, end: -math.Pi * 0.5}
)

// ArrowWidth returns the base width of an arrow of the given height.
func ArrowWidth(arrowHeight float64) float64 {
	return arrowHeight * ArrowWidthRatio
}

// SafeBounds is the range an arrow offset may take inside a rectangle.
type SafeBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp limits pt to the bounds. An empty range on either axis (Max < Min)
// collapses that coordinate to zero, centering the arrow.
func (b SafeBounds) Clamp(pt Point) Point {
	return Point{
		X: clamp(pt.X, b.MinX, b.MaxX),
		Y: clamp(pt.Y, b.MinY, b.MaxY),
	}
}

// SafeBoundsFor returns the arrow offset range for a bubble of style s
// drawn in r. The vertical range is computed the same way for the reserved
// Y offset.
func SafeBoundsFor(r Rect, s Style) SafeBounds {
	r, s = r.sanitized(), s.sanitized()
	arrowWidth := ArrowWidth(s.ArrowHeight)
	horizontal := r.Width/2 - arrowWidth/2 - s.Border.Width - CornerMargin
	vertical := r.Height/2 - arrowWidth/2 - s.Border.Width - CornerMargin
	return SafeBounds{
		MinX: -horizontal,
		MaxX: horizontal,
		MinY: -vertical,
		MaxY: vertical,
	}
}

// EffectiveArrowOffset returns the arrow offset that Build actually uses
// for style s in r. The style itself is left untouched.
func EffectiveArrowOffset(r Rect, s Style) Point {
	return SafeBoundsFor(r, s).Clamp(s.ArrowOffset)
}

// Build returns the bubble outline for style s filling r.
//
// The path is expressed in r's local coordinates, with (0, 0) at its
// top-left corner; use BuildAt to place it at r's origin. It starts with a
// MoveTo at the right end of the arrow base, runs through the four rounded
// corners and returns over the arrow to its starting point.
//
// Build never fails. Negative lengths are treated as zero and the arrow
// offset is clamped into SafeBoundsFor(r, s). When the arrow is wider than
// the rectangle the outline may self-intersect.
func Build(r Rect, s Style) *Path {
	r, s = r.sanitized(), s.sanitized()

	offset := EffectiveArrowOffset(r, s)
	if offset.X != s.ArrowOffset.X {
		Logger().Debug("bubble: arrow offset clamped",
			"requested", s.ArrowOffset.X,
			"effective", offset.X,
			"width", r.Width)
	}

	halfArrowWidth := ArrowWidth(s.ArrowHeight) / 2
	arrowBaseY := s.ArrowHeight + s.Border.Width
	midX := r.Width/2 + offset.X

	b := BuildPath().MoveTo(Pt(midX+halfArrowWidth, arrowBaseY))
	addCornerArcs(b, r, s)
	addArrow(b, s, midX, halfArrowWidth, arrowBaseY)

	if s.ArrowAlignment == ArrowBottom {
		b.Transform(FlipVertical(r.Height))
	}
	return b.Build()
}

// BuildAt is like Build but places the outline at r's origin.
func BuildAt(r Rect, s Style) *Path {
	return Build(r, s).Transform(Translate(r.X, r.Y))
}

// addCornerArcs draws the rounded corners clockwise on screen, starting at
// the top-right one. Top corners sit below the space reserved for the arrow.
func addCornerArcs(b *PathBuilder, r Rect, s Style) {
	radius := s.Border.Radius
	halfBorderWidth := s.Border.Width / 2

	topY := radius + s.ArrowHeight + s.Border.Width
	bottomY := r.Height - radius - halfBorderWidth
	rightX := r.Width - radius - halfBorderWidth
	leftX := radius + halfBorderWidth

	b.ArcTo(Pt(rightX, topY), radius, arcTopTrailing.start, arcTopTrailing.end, false).
		ArcTo(Pt(rightX, bottomY), radius, arcBottomTrailing.start, arcBottomTrailing.end, false).
		ArcTo(Pt(leftX, bottomY), radius, arcBottomLeading.start, arcBottomLeading.end, false).
		ArcTo(Pt(leftX, topY), radius, arcTopLeading.start, arcTopLeading.end, false)
}

// addArrow draws the arrow from its left base point over the tip and back
// down to its right base point, which is where the outline started.
func addArrow(b *PathBuilder, s Style, midX, halfArrowWidth, arrowBaseY float64) {
	halfBorderWidth := s.Border.Width / 2

	baseX := halfArrowWidth
	peakX := halfArrowWidth * ArrowPeakXRatio
	peakY := s.ArrowHeight*ArrowPeakYRatio + halfBorderWidth
	curveX := halfArrowWidth * ArrowCurveXRatio
	curveY := arrowBaseY * ArrowCurveYRatio
	ctrlX := halfArrowWidth * ArrowControlXRatio
	apexY := s.ArrowHeight*ArrowApexYRatio + halfBorderWidth

	b.LineTo(Pt(midX-baseX, arrowBaseY)).
		QuadTo(Pt(midX-ctrlX, arrowBaseY), Pt(midX-curveX, curveY)).
		LineTo(Pt(midX-peakX, peakY)).
		QuadTo(Pt(midX, apexY), Pt(midX+peakX, peakY)).
		LineTo(Pt(midX+curveX, curveY)).
		QuadTo(Pt(midX+ctrlX, arrowBaseY), Pt(midX+baseX, arrowBaseY))
}
