package text

import (
	"fmt"
	"sync"

	"github.com/gogpu/bubble"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// BuiltinMeasurer measures text with golang.org/x/image/font.
// It applies the font's kerning table but no other OpenType shaping; use
// GoTextMeasurer for ligatures and complex scripts.
type BuiltinMeasurer struct {
	source *FontSource

	once   sync.Once
	parsed *opentype.Font
	err    error
}

// NewBuiltinMeasurer creates a measurer for source.
func NewBuiltinMeasurer(source *FontSource) *BuiltinMeasurer {
	return &BuiltinMeasurer{source: source}
}

func (m *BuiltinMeasurer) font() (*opentype.Font, error) {
	m.once.Do(func() {
		m.parsed, m.err = opentype.Parse(m.source.data)
		if m.err != nil {
			m.err = fmt.Errorf("text: parse %s: %w", m.source.name, m.err)
		}
	})
	return m.parsed, m.err
}

// Face returns an x/image face at size points (72 DPI) with full hinting.
// The caller must Close it. The raster package draws labels with it.
func (m *BuiltinMeasurer) Face(size float64) (font.Face, error) {
	f, err := m.font()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: new face: %w", err)
	}
	return face, nil
}

// Measure implements Measurer.
func (m *BuiltinMeasurer) Measure(s string, size float64) (bubble.Size, error) {
	if s == "" || !(size > 0) {
		return bubble.Size{}, nil
	}
	face, err := m.Face(size)
	if err != nil {
		return bubble.Size{}, err
	}
	defer func() {
		_ = face.Close()
	}()

	lines := splitLines(s)
	widths := make([]float64, len(lines))
	for i, line := range lines {
		widths[i] = fixedToFloat(font.MeasureString(face, line))
	}
	return blockSize(widths, fixedToFloat(face.Metrics().Height)), nil
}
