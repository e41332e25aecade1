package bubble

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(pt Point) *PathBuilder {
	b.path.MoveTo(pt.X, pt.Y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(pt Point) *PathBuilder {
	b.path.LineTo(pt.X, pt.Y)
	return b
}

// QuadTo draws a quadratic Bezier curve ending at pt.
func (b *PathBuilder) QuadTo(ctrl, pt Point) *PathBuilder {
	b.path.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
	return b
}

// ArcTo draws a circular arc around center. See ArcTo for the direction
// convention.
func (b *PathBuilder) ArcTo(center Point, r, startAngle, endAngle float64, clockwise bool) *PathBuilder {
	b.path.Arc(center.X, center.Y, r, startAngle, endAngle, clockwise)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Transform replaces the path built so far with its image under m.
func (b *PathBuilder) Transform(m Matrix) *PathBuilder {
	if !m.IsIdentity() {
		b.path = b.path.Transform(m)
	}
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
