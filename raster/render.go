// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/bubble"
	"github.com/gogpu/bubble/internal/path"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Render draws the bubble described by l with the colors of s.
//
// The image is l.Size scaled by the render scale, rounded up to whole
// pixels. Transparent fill or border colors are skipped.
func Render(l bubble.Layout, s bubble.Style, opts ...Option) *image.RGBA {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := int(math.Ceil(l.Size.Width * o.scale))
	h := int(math.Ceil(l.Size.Height * o.scale))
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if !o.canvas.IsTransparent() {
		draw.Draw(img, img.Bounds(), image.NewUniform(o.canvas.Color()), image.Point{}, draw.Src)
	}
	if l.Path == nil || l.Path.IsEmpty() {
		return img
	}

	p := l.Path.Transform(bubble.Scale(o.scale, o.scale)).ExpandArcs()
	ras := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	ras.DrawOp = draw.Over

	if !s.Background.IsTransparent() {
		fillPath(ras, p)
		ras.Draw(img, img.Bounds(), image.NewUniform(s.Background.Color()), image.Point{})
	}

	if s.Border.Width > 0 && !s.Border.Color.IsTransparent() {
		ras.Reset(img.Bounds().Dx(), img.Bounds().Dy())
		ras.DrawOp = draw.Over
		lines := path.Flatten(convertPath(p), o.tolerance)
		for _, line := range lines {
			for _, poly := range path.StrokePolygons(line, s.Border.Width*o.scale) {
				addPolygon(ras, poly)
			}
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(s.Border.Color.Color()), image.Point{})
	}

	if o.label != "" && o.labelFace != nil {
		drawLabel(img, l, o)
	}

	bubble.Logger().Debug("raster: bubble rendered",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "scale", o.scale)
	return img
}

// fillPath feeds the path to the rasterizer, closing every subpath.
func fillPath(ras *vector.Rasterizer, p *bubble.Path) {
	open := false
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case bubble.MoveTo:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(s.Point.X), float32(s.Point.Y))
			open = true
		case bubble.LineTo:
			ras.LineTo(float32(s.Point.X), float32(s.Point.Y))
		case bubble.QuadTo:
			ras.QuadTo(float32(s.Control.X), float32(s.Control.Y), float32(s.Point.X), float32(s.Point.Y))
		case bubble.CubicTo:
			ras.CubeTo(float32(s.Control1.X), float32(s.Control1.Y),
				float32(s.Control2.X), float32(s.Control2.Y),
				float32(s.Point.X), float32(s.Point.Y))
		case bubble.Close:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}
}

func addPolygon(ras *vector.Rasterizer, poly []path.Point) {
	if len(poly) < 3 {
		return
	}
	ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, pt := range poly[1:] {
		ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	ras.ClosePath()
}

// convertPath converts bubble.Path segments to path.PathElement for
// flattening. Arcs must already be expanded.
func convertPath(p *bubble.Path) []path.PathElement {
	var elements []path.PathElement
	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case bubble.MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point{X: s.Point.X, Y: s.Point.Y}})
		case bubble.LineTo:
			elements = append(elements, path.LineTo{Point: path.Point{X: s.Point.X, Y: s.Point.Y}})
		case bubble.QuadTo:
			elements = append(elements, path.QuadTo{
				Control: path.Point{X: s.Control.X, Y: s.Control.Y},
				Point:   path.Point{X: s.Point.X, Y: s.Point.Y},
			})
		case bubble.CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: path.Point{X: s.Control1.X, Y: s.Control1.Y},
				Control2: path.Point{X: s.Control2.X, Y: s.Control2.Y},
				Point:    path.Point{X: s.Point.X, Y: s.Point.Y},
			})
		case bubble.Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// drawLabel draws the label with its first baseline one ascent below the
// top of the content rectangle.
func drawLabel(img *image.RGBA, l bubble.Layout, o options) {
	m := o.labelFace.Metrics()
	x := l.Content.X * o.scale
	y := l.Content.Y*o.scale + float64(m.Ascent)/64
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(o.labelColor.Color()),
		Face: o.labelFace,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(o.label)
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG saves img to a PNG file.
func SavePNG(img image.Image, filename string) error {
	f, err := os.Create(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	bubble.Logger().Info("raster: png written", "path", filename)
	return nil
}
