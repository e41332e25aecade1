package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/bubble"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// GoTextMeasurer measures text with HarfBuzz-level shaping from
// go-text/typesetting, so ligatures, kerning and right-to-left runs are
// accounted for. Each line is split into directional runs first.
//
// GoTextMeasurer is safe for concurrent use. The font is parsed once; a
// font.Face is created per call since faces are not concurrent-safe.
// HarfbuzzShaper instances are pooled for the same reason.
type GoTextMeasurer struct {
	source *FontSource

	shaperPool sync.Pool

	once   sync.Once
	parsed *font.Font
	err    error
}

// NewGoTextMeasurer creates a measurer for source.
func NewGoTextMeasurer(source *FontSource) *GoTextMeasurer {
	return &GoTextMeasurer{
		source: source,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Measure implements Measurer.
func (m *GoTextMeasurer) Measure(s string, size float64) (bubble.Size, error) {
	if s == "" || !(size > 0) {
		return bubble.Size{}, nil
	}
	f, err := m.font()
	if err != nil {
		return bubble.Size{}, err
	}
	face := font.NewFace(f)

	var lineHeight float64
	lines := splitLines(s)
	widths := make([]float64, len(lines))
	for i, line := range lines {
		w, h := m.measureLine(face, []rune(line), size)
		widths[i] = w
		lineHeight = max(lineHeight, h)
	}
	if lineHeight == 0 {
		// Only empty lines: take the height from shaping a space.
		_, lineHeight = m.measureLine(face, []rune{' '}, size)
	}
	return blockSize(widths, lineHeight), nil
}

// measureLine shapes each directional run of a line and returns the total
// advance and the line height.
func (m *GoTextMeasurer) measureLine(face *font.Face, runes []rune, size float64) (width, height float64) {
	if len(runes) == 0 {
		return 0, 0
	}
	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer m.shaperPool.Put(hb)

	for _, r := range bidiRuns(runes) {
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: r.dir,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    detectScript(runes[r.start:r.end]),
			Language:  language.NewLanguage("en"),
		})
		width += fixedToFloat(out.Advance)
		b := out.LineBounds
		height = max(height, fixedToFloat(b.Ascent-b.Descent+b.Gap))
	}
	return width, height
}

type run struct {
	start, end int // rune range, end exclusive
	dir        di.Direction
}

// bidiRuns splits runes into runs of uniform direction.
func bidiRuns(runes []rune) []run {
	whole := []run{{start: 0, end: len(runes), dir: di.DirectionLTR}}

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		// Pos returns rune indices, end inclusive.
		start, end := r.Pos()
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{start: start, end: min(end+1, len(runes)), dir: dir})
	}
	return runs
}

func (m *GoTextMeasurer) font() (*font.Font, error) {
	m.once.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(m.source.data))
		if err != nil {
			m.err = fmt.Errorf("text: parse %s: %w", m.source.name, err)
			return
		}
		m.parsed = face.Font
	})
	return m.parsed, m.err
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
