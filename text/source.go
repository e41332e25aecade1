package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// FontSource holds the bytes of a font file (TTF or OTF).
// One FontSource serves every size; measurers parse it once and cache the
// result keyed by the source pointer, so share sources across the program.
type FontSource struct {
	data []byte
	name string
}

// NewFontSource creates a FontSource from font data.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, name string) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &FontSource{data: buf, name: name}, nil
}

// LoadFontSource reads a font file from disk.
func LoadFontSource(filename string) (*FontSource, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: load font: %w", err)
	}
	return NewFontSource(data, filename)
}

// Name returns the name the source was created with.
func (s *FontSource) Name() string {
	return s.name
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *FontSource
)

// DefaultFontSource returns the Go Regular font bundled with
// golang.org/x/image.
func DefaultFontSource() *FontSource {
	defaultSourceOnce.Do(func() {
		defaultSource = &FontSource{data: goregular.TTF, name: "Go Regular"}
	})
	return defaultSource
}
