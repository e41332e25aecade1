package text

import (
	"fmt"
	"strings"

	"github.com/gogpu/bubble"
)

// Measurer computes the size of a block of text. The result is the content
// size a bubble is fitted around.
//
// Implementations are safe for concurrent use.
type Measurer interface {
	// Measure returns the size of s set in the measurer's font at size
	// points. Lines are separated by '\n'; the width is that of the widest
	// line and the height is the line height times the number of lines.
	Measure(s string, size float64) (bubble.Size, error)
}

// Measurer backend names accepted by NewMeasurer.
const (
	BackendBuiltin = "builtin"
	BackendGoText  = "gotext"
)

// NewMeasurer returns the measurer backend with the given name for source.
// A nil source selects DefaultFontSource.
func NewMeasurer(backend string, source *FontSource) (Measurer, error) {
	if source == nil {
		source = DefaultFontSource()
	}
	switch strings.ToLower(backend) {
	case "", BackendBuiltin:
		return NewBuiltinMeasurer(source), nil
	case BackendGoText:
		return NewGoTextMeasurer(source), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMeasurer, backend)
	}
}

// splitLines splits s into lines, dropping a single trailing newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// blockSize combines per-line widths into the size of the whole block.
func blockSize(widths []float64, lineHeight float64) bubble.Size {
	var w float64
	for _, lw := range widths {
		w = max(w, lw)
	}
	size := bubble.Size{Width: w, Height: lineHeight * float64(len(widths))}
	bubble.Logger().Debug("text: measured", "lines", len(widths), "width", size.Width, "height", size.Height)
	return size
}
