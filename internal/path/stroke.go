package path

import "math"

// joinSegments is the number of edges used to approximate a round join.
const joinSegments = 16

// StrokePolygons outlines a polyline stroked with the given width.
//
// The result is a set of small polygons: one quadrilateral per edge and one
// disc per vertex, which together form round joins. Every polygon winds the
// same way, so a nonzero or accumulating rasterizer covers their union
// without cancellation.
func StrokePolygons(line Polyline, width float64) [][]Point {
	if !(width > 0) || len(line.Points) == 0 {
		return nil
	}
	half := width / 2
	pts := line.Points
	n := len(pts)

	edges := n - 1
	if line.Closed {
		edges = n
	}

	polys := make([][]Point, 0, edges+n)
	for i := 0; i < edges; i++ {
		a, b := pts[i], pts[(i+1)%n]
		if q := edgeQuad(a, b, half); q != nil {
			polys = append(polys, q)
		}
	}
	for i, p := range pts {
		// Open polylines keep butt ends.
		if !line.Closed && (i == 0 || i == n-1) {
			continue
		}
		polys = append(polys, disc(p, half))
	}
	return polys
}

// edgeQuad returns the rectangle covering segment a-b widened by half on
// each side, or nil for a zero-length segment.
func edgeQuad(a, b Point, half float64) []Point {
	d := b.Sub(a)
	l := d.Length()
	if l < 1e-12 {
		return nil
	}
	nx, ny := -d.Y/l*half, d.X/l*half
	n := Point{X: nx, Y: ny}
	return orient([]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// disc approximates a circle of radius r around c.
func disc(c Point, r float64) []Point {
	pts := make([]Point, joinSegments)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / joinSegments
		pts[i] = Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
	}
	return orient(pts)
}

// orient reverses poly in place if needed so its signed area is positive.
func orient(poly []Point) []Point {
	if SignedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

// SignedArea returns the shoelace area of a closed polygon. It is positive
// when the vertices turn towards +Y from +X (clockwise on a y-down screen).
func SignedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
