// Command bubbledemo draws a tooltip bubble around a text label and writes
// it as PNG or SVG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/bubble"
	"github.com/gogpu/bubble/config"
	"github.com/gogpu/bubble/raster"
	"github.com/gogpu/bubble/text"
)

type options struct {
	label    string
	config   string
	align    string
	offset   float64
	arrow    float64
	fontPath string
	fontSize float64
	shaper   string
	scale    float64
	output   string
	styleOut string
	verbose  bool

	set map[string]bool
}

func main() {
	var o options
	flag.StringVar(&o.label, "text", "Hello, bubble!", "label drawn inside the bubble")
	flag.StringVar(&o.config, "config", "", "TOML style file")
	flag.StringVar(&o.align, "align", "bottom", "arrow alignment: top or bottom")
	flag.Float64Var(&o.offset, "offset", 0, "horizontal arrow offset")
	flag.Float64Var(&o.arrow, "arrow", 5, "arrow height")
	flag.StringVar(&o.fontPath, "font", "", "TTF/OTF font file (default: Go Regular)")
	flag.Float64Var(&o.fontSize, "size", 14, "font size in points")
	flag.StringVar(&o.shaper, "shaper", text.BackendBuiltin, "text measurer: builtin or gotext")
	flag.Float64Var(&o.scale, "scale", 2, "pixels per point for PNG output")
	flag.StringVar(&o.output, "o", "bubble.png", "output file (.png or .svg)")
	flag.StringVar(&o.styleOut, "style-out", "", "write the resolved style as TOML to this file")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	flag.Parse()

	o.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if o.verbose {
		bubble.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(o); err != nil {
		log.Fatalf("bubbledemo: %v", err)
	}
}

func run(o options) error {
	style, err := resolveStyle(o)
	if err != nil {
		return err
	}

	if o.styleOut != "" {
		if err := writeStyle(o.styleOut, style); err != nil {
			return err
		}
	}

	source := text.DefaultFontSource()
	if o.fontPath != "" {
		if source, err = text.LoadFontSource(o.fontPath); err != nil {
			return err
		}
	}
	measurer, err := text.NewMeasurer(o.shaper, source)
	if err != nil {
		return err
	}
	content, err := measurer.Measure(o.label, o.fontSize)
	if err != nil {
		return fmt.Errorf("measure label: %w", err)
	}

	layout := bubble.Measure(content, style)

	switch strings.ToLower(filepath.Ext(o.output)) {
	case ".svg":
		if err := os.WriteFile(o.output, []byte(bubble.SVGDocument(layout, style)), 0o644); err != nil { //nolint:gosec // output is meant to be world-readable
			return err
		}
	case ".png":
		face, err := text.NewBuiltinMeasurer(source).Face(o.fontSize * o.scale)
		if err != nil {
			return err
		}
		defer func() {
			_ = face.Close()
		}()
		img := raster.Render(layout, style,
			raster.WithScale(o.scale),
			raster.WithLabel(o.label, face, bubble.Black))
		if err := raster.SavePNG(img, o.output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", o.output)
	}

	log.Print(summary(o.output, layout.Size))
	return nil
}

// summary is the line logged after the output file is written.
func summary(output string, size bubble.Size) string {
	return fmt.Sprintf("Bubble saved to %s (%.0fx%.0f pt)", output, size.Width, size.Height)
}

// resolveStyle starts from the style file (or the defaults) and applies
// the flags given on the command line.
func resolveStyle(o options) (bubble.Style, error) {
	style := bubble.DefaultStyle()
	if o.config != "" {
		var err error
		if style, err = config.Load(o.config); err != nil {
			return bubble.Style{}, err
		}
	}
	if o.set["align"] {
		a, err := bubble.ParseArrowAlignment(o.align)
		if err != nil {
			return bubble.Style{}, err
		}
		style = style.WithArrowAlignment(a)
	}
	if o.set["offset"] {
		style = style.WithArrowOffset(o.offset, style.ArrowOffset.Y)
	}
	if o.set["arrow"] {
		if o.arrow < 0 {
			return bubble.Style{}, errors.New("arrow height must not be negative")
		}
		style = style.WithArrowHeight(o.arrow)
	}
	return style, nil
}

func writeStyle(path string, s bubble.Style) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := config.Encode(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
