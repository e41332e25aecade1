package bubble

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToSVG returns the path in the SVG path data format.
//
// Arcs become endpoint-parameterized "A" commands, preceded by an "L" when
// the current point is not already on the arc. Since a bubble outline ends
// where it started, the result always ends with "Z".
func (p *Path) ToSVG() string {
	if p.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	var cur Point
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			fmt.Fprintf(&sb, " M%s %s", num(s.Point.X), num(s.Point.Y))
			cur = s.Point
		case LineTo:
			fmt.Fprintf(&sb, " L%s %s", num(s.Point.X), num(s.Point.Y))
			cur = s.Point
		case QuadTo:
			fmt.Fprintf(&sb, " Q%s %s %s %s", num(s.Control.X), num(s.Control.Y), num(s.Point.X), num(s.Point.Y))
			cur = s.Point
		case CubicTo:
			fmt.Fprintf(&sb, " C%s %s %s %s %s %s",
				num(s.Control1.X), num(s.Control1.Y),
				num(s.Control2.X), num(s.Control2.Y),
				num(s.Point.X), num(s.Point.Y))
			cur = s.Point
		case ArcTo:
			start := s.StartPoint()
			if sb.Len() == 0 {
				fmt.Fprintf(&sb, " M%s %s", num(start.X), num(start.Y))
			} else if cur.Distance(start) > epsilon {
				fmt.Fprintf(&sb, " L%s %s", num(start.X), num(start.Y))
			}
			cur = start
			sweep := s.Sweep()
			if sweep == 0 || math.IsNaN(sweep) {
				continue
			}
			large, positive := "0", "0"
			if math.Abs(sweep) > math.Pi {
				large = "1"
			}
			if sweep > 0 {
				positive = "1"
			}
			end := s.EndPoint()
			fmt.Fprintf(&sb, " A%s %s 0 %s %s %s %s",
				num(s.Radius), num(s.Radius), large, positive, num(end.X), num(end.Y))
			cur = end
		case Close:
			sb.WriteString(" Z")
		}
	}
	if _, closed := p.segments[len(p.segments)-1].(Close); !closed {
		sb.WriteString(" Z")
	}
	return sb.String()[1:]
}

// SVGDocument returns a standalone SVG image of the bubble described by l,
// filled and stroked with the colors of s.
func SVGDocument(l Layout, s Style) string {
	s = s.sanitized()
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(l.Size.Width), num(l.Size.Height), num(l.Size.Width), num(l.Size.Height))
	sb.WriteString("\n")
	fill := "none"
	if !s.Background.IsTransparent() {
		fill = s.Background.Hex()
	}
	stroke := "none"
	if s.Border.Width > 0 && !s.Border.Color.IsTransparent() {
		stroke = s.Border.Color.Hex()
	}
	d := ""
	if l.Path != nil {
		d = l.Path.ToSVG()
	}
	fmt.Fprintf(&sb, `  <path d="%s" fill="%s" stroke="%s" stroke-width="%s"/>`,
		d, fill, stroke, num(s.Border.Width))
	sb.WriteString("\n</svg>\n")
	return sb.String()
}

// num formats a coordinate with at most 4 decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
