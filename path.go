package bubble

import "math"

// epsilon is the distance below which two points are treated as equal.
const epsilon = 1e-9

// PathSegment represents a single segment in a path.
type PathSegment interface {
	isPathSegment()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathSegment() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathSegment() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathSegment() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathSegment() {}

// ArcTo draws a circular arc around Center.
//
// If the current point differs from the arc's start point, a straight line
// joins them first. With Clockwise false the arc sweeps from StartAngle
// towards increasing angles until it reaches EndAngle, wrapping through 2π
// when needed; with Clockwise true it sweeps towards decreasing angles.
type ArcTo struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

func (ArcTo) isPathSegment() {}

// Sweep returns the signed angle covered by the arc, in (-2π, 2π).
// Positive values sweep towards increasing angles.
func (a ArcTo) Sweep() float64 {
	const twoPi = 2 * math.Pi
	d := math.Mod(a.EndAngle-a.StartAngle, twoPi)
	if !a.Clockwise && d < 0 {
		d += twoPi
	}
	if a.Clockwise && d > 0 {
		d -= twoPi
	}
	return d
}

// StartPoint returns the point where the arc begins.
func (a ArcTo) StartPoint() Point {
	return a.Center.polar(a.Radius, a.StartAngle)
}

// EndPoint returns the point where the arc ends.
func (a ArcTo) EndPoint() Point {
	return a.Center.polar(a.Radius, a.StartAngle+a.Sweep())
}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathSegment() {}

// Path represents a vector path.
// A bubble outline is a single contour whose last segment ends on its first
// point, so consumers may treat it as closed even without a Close segment.
type Path struct {
	segments []PathSegment
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]PathSegment, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.segments = append(p.segments, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segments = append(p.segments, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians).
// See ArcTo for the direction convention.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64, clockwise bool) {
	p.appendArc(ArcTo{
		Center:     Pt(cx, cy),
		Radius:     r,
		StartAngle: angle1,
		EndAngle:   angle2,
		Clockwise:  clockwise,
	})
}

func (p *Path) appendArc(a ArcTo) {
	if len(p.segments) == 0 {
		p.start = a.StartPoint()
	}
	p.segments = append(p.segments, a)
	p.current = a.EndPoint()
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.segments = append(p.segments, Close{})
	p.current = p.start
}

// Segments returns the path segments.
func (p *Path) Segments() []PathSegment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform applies a transformation matrix to all points in the path and
// returns the result as a new path.
//
// Arcs are carried over exactly when m neither rotates nor shears and
// scales both axes by the same magnitude. Otherwise each arc is expanded
// into cubic Bezier segments before transforming.
func (p *Path) Transform(m Matrix) *Path {
	src := p
	if !m.isAxisConformal() && p.hasArcs() {
		src = p.ExpandArcs()
	}
	result := NewPath()
	for _, seg := range src.segments {
		switch s := seg.(type) {
		case MoveTo:
			pt := m.TransformPoint(s.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(s.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(s.Control)
			pt := m.TransformPoint(s.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(s.Control1)
			ctrl2 := m.TransformPoint(s.Control2)
			pt := m.TransformPoint(s.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case ArcTo:
			result.appendArc(transformArc(s, m))
		case Close:
			result.Close()
		}
	}
	return result
}

func (p *Path) hasArcs() bool {
	for _, seg := range p.segments {
		if _, ok := seg.(ArcTo); ok {
			return true
		}
	}
	return false
}

// transformArc maps an arc through an axis-conformal matrix.
func transformArc(a ArcTo, m Matrix) ArcTo {
	flipX, flipY := m.A < 0, m.E < 0
	mapAngle := func(theta float64) float64 {
		switch {
		case flipX && flipY:
			return theta + math.Pi
		case flipX:
			return math.Pi - theta
		case flipY:
			return -theta
		default:
			return theta
		}
	}
	return ArcTo{
		Center:     m.TransformPoint(a.Center),
		Radius:     a.Radius * math.Abs(m.A),
		StartAngle: mapAngle(a.StartAngle),
		EndAngle:   mapAngle(a.EndAngle),
		Clockwise:  a.Clockwise != (flipX != flipY),
	}
}

// ExpandArcs returns a copy of the path in which every arc is replaced by
// cubic Bezier segments. Renderers without native arc support use this.
func (p *Path) ExpandArcs() *Path {
	result := NewPath()
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case ArcTo:
			result.arcCubics(s)
		case MoveTo:
			result.MoveTo(s.Point.X, s.Point.Y)
		case LineTo:
			result.LineTo(s.Point.X, s.Point.Y)
		case QuadTo:
			result.QuadraticTo(s.Control.X, s.Control.Y, s.Point.X, s.Point.Y)
		case CubicTo:
			result.CubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.Point.X, s.Point.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// arcCubics appends the arc as a connecting line (or initial move) plus
// cubic Bezier segments of at most 90 degrees each.
func (p *Path) arcCubics(a ArcTo) {
	start := a.StartPoint()
	switch {
	case p.IsEmpty():
		p.MoveTo(start.X, start.Y)
	case p.current.Distance(start) > epsilon:
		p.LineTo(start.X, start.Y)
	}

	sweep := a.Sweep()
	if sweep == 0 || math.IsNaN(sweep) {
		return
	}
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(sweep) / maxAngle))
	step := sweep / float64(numSegments)
	for i := 0; i < numSegments; i++ {
		a1 := a.StartAngle + float64(i)*step
		p.arcSegment(a.Center.X, a.Center.Y, a.Radius, a1, a1+step)
	}
}

// arcSegment adds a single arc segment (at most 90 degrees, either direction).
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	// Control points sit on the end tangents at k*r, signed by the sweep.
	k := 4.0 / 3.0 * math.Tan((a2-a1)/4)

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - k*r*sin1
	c1y := y1 + k*r*cos1
	c2x := x2 + k*r*sin2
	c2y := y2 - k*r*cos2

	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// Bounds returns the axis-aligned bounding box of the path.
// Curve control points are included; arcs contribute their exact extent.
// An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt Point) {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			add(s.Point)
		case LineTo:
			add(s.Point)
		case QuadTo:
			add(s.Control)
			add(s.Point)
		case CubicTo:
			add(s.Control1)
			add(s.Control2)
			add(s.Point)
		case ArcTo:
			add(s.StartPoint())
			add(s.EndPoint())
			for k := 0; k < 4; k++ {
				angle := float64(k) * math.Pi / 2
				if s.contains(angle) {
					add(s.Center.polar(s.Radius, angle))
				}
			}
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// contains reports whether angle lies within the arc's sweep.
func (a ArcTo) contains(angle float64) bool {
	const twoPi = 2 * math.Pi
	sweep := a.Sweep()
	var t float64
	if sweep >= 0 {
		t = math.Mod(angle-a.StartAngle, twoPi)
	} else {
		t = math.Mod(a.StartAngle-angle, twoPi)
	}
	if t < 0 {
		t += twoPi
	}
	return t <= math.Abs(sweep)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.segments = make([]PathSegment, len(p.segments))
	copy(result.segments, p.segments)
	result.start = p.start
	result.current = p.current
	return result
}
