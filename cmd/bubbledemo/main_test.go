package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/bubble"
	"github.com/gogpu/bubble/config"
)

func baseOptions(t *testing.T, output string) options {
	return options{
		label:    "Hello",
		align:    "bottom",
		arrow:    5,
		fontSize: 14,
		shaper:   "builtin",
		scale:    1,
		output:   filepath.Join(t.TempDir(), output),
		set:      map[string]bool{},
	}
}

func TestResolveStyleFlagsOverrideConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(cfg, []byte("arrow_alignment = \"top\"\narrow_height = 9.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	o := baseOptions(t, "x.svg")
	o.config = cfg
	o.offset = 12
	o.set["offset"] = true

	s, err := resolveStyle(o)
	if err != nil {
		t.Fatal(err)
	}
	if s.ArrowAlignment != bubble.ArrowTop || s.ArrowHeight != 9 {
		t.Errorf("config values lost: %+v", s)
	}
	if s.ArrowOffset.X != 12 {
		t.Errorf("offset flag not applied: %+v", s.ArrowOffset)
	}

	o.align = "left"
	o.set["align"] = true
	if _, err := resolveStyle(o); err == nil {
		t.Error("expected error for an unknown alignment")
	}
}

func TestRunWritesSVGAndStyle(t *testing.T) {
	o := baseOptions(t, "bubble.svg")
	o.styleOut = filepath.Join(t.TempDir(), "resolved.toml")

	if err := run(o); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(o.output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("unexpected output:\n%s", data)
	}

	s, err := config.Load(o.styleOut)
	if err != nil {
		t.Fatal(err)
	}
	if s != bubble.DefaultStyle() {
		t.Errorf("resolved style = %+v, want defaults", s)
	}
}

func TestRunWritesPNG(t *testing.T) {
	o := baseOptions(t, "bubble.png")
	if err := run(o); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(o.output); err != nil {
		t.Error(err)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	if err := run(baseOptions(t, "bubble.gif")); err == nil {
		t.Error("expected error for .gif output")
	}
}

func TestSummary(t *testing.T) {
	got := summary("out.png", bubble.Size{Width: 114, Height: 61})
	if want := "Bubble saved to out.png (114x61 pt)"; got != want {
		t.Errorf("summary() = %q, want %q", got, want)
	}
}
