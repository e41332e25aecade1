// Package text measures text labels so a bubble can be fitted around them.
//
// A FontSource holds font data shared by every size. Measurers turn a
// string and a point size into the content size that bubble.Measure takes:
//
//   - BuiltinMeasurer uses golang.org/x/image/font/opentype with kerning only.
//   - GoTextMeasurer shapes each bidi run with go-text/typesetting.
//   - CachedMeasurer remembers the results of another measurer.
//
// Example:
//
//	m, err := text.NewMeasurer(text.BackendGoText, text.DefaultFontSource())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	size, err := m.Measure("Hello, bubble!", 14)
//	layout := bubble.Measure(size, bubble.DefaultStyle())
//
// Lines are separated by '\n'. Wrapping is left to the caller.
package text
