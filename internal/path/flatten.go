// Package path provides internal path processing utilities for rasterizing
// bubble outlines: curve flattening and stroke outlining.
package path

import "math"

// Point is a 2D point in device space.
type Point struct {
	X, Y float64
}

// Tolerance is the default maximum distance from the curve for flattening.
const Tolerance = 0.1

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts a path with curves into polylines, one per subpath.
// A subpath whose last point coincides with its first is reported as closed
// even without an explicit Close.
func Flatten(elements []PathElement, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = Tolerance
	}

	var lines []Polyline
	var cur *Polyline
	var current Point

	begin := func(pt Point) {
		lines = append(lines, Polyline{Points: []Point{pt}})
		cur = &lines[len(lines)-1]
		current = pt
	}
	ensure := func() {
		if cur == nil || cur.Closed {
			begin(current)
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			begin(e.Point)

		case LineTo:
			ensure()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point

		case QuadTo:
			ensure()
			flattenQuad(current, e.Control, e.Point, tolerance, &cur.Points, 0)
			current = e.Point

		case CubicTo:
			ensure()
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, &cur.Points, 0)
			current = e.Point

		case Close:
			if cur != nil {
				cur.Closed = true
				current = cur.Points[0]
			}
		}
	}

	// Drop single-point subpaths and detect implicit closure.
	out := lines[:0]
	for _, l := range lines {
		if len(l.Points) < 2 {
			continue
		}
		first, last := l.Points[0], l.Points[len(l.Points)-1]
		if first.Distance(last) < 1e-9 {
			l.Closed = true
			l.Points = l.Points[:len(l.Points)-1]
		}
		out = append(out, l)
	}
	return out
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Length() float64   { return math.Hypot(p.X, p.Y) }

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// maxDepth bounds curve subdivision so NaN or huge coordinates cannot
// recurse forever.
const maxDepth = 16

// flattenQuad appends points approximating the quadratic p0-p1-p2, ending
// with p2. A curve is split in half until its control point lies within
// tolerance of the chord.
func flattenQuad(p0, p1, p2 Point, tolerance float64, out *[]Point, depth int) {
	if !(chordDistance(p1, p0, p2) >= tolerance) || depth >= maxDepth {
		*out = append(*out, p2)
		return
	}
	l1, r1 := midpoint(p0, p1), midpoint(p1, p2)
	m := midpoint(l1, r1)
	flattenQuad(p0, l1, m, tolerance, out, depth+1)
	flattenQuad(m, r1, p2, tolerance, out, depth+1)
}

// flattenCubic is flattenQuad for cubics: both control points must lie
// within tolerance of the chord.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, out *[]Point, depth int) {
	d := max(chordDistance(p1, p0, p3), chordDistance(p2, p0, p3))
	if !(d >= tolerance) || depth >= maxDepth {
		*out = append(*out, p3)
		return
	}
	a, b, c := midpoint(p0, p1), midpoint(p1, p2), midpoint(p2, p3)
	ab, bc := midpoint(a, b), midpoint(b, c)
	m := midpoint(ab, bc)
	flattenCubic(p0, a, ab, m, tolerance, out, depth+1)
	flattenCubic(m, bc, c, p3, tolerance, out, depth+1)
}

// chordDistance returns the distance from p to the segment a-b.
func chordDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / l2
	t = min(max(t, 0), 1)
	return p.Distance(Point{X: a.X + ab.X*t, Y: a.Y + ab.Y*t})
}
