package bubble

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000000", Black},
		{"#ffffff", White},
		{"FFFFFF", White},
		{"#fff", White},
		{"#ff000080", RGBA{R: 1, A: 128.0 / 255}},
		{"#00000000", Transparent},
		{"transparent", Transparent},
		{" Black ", Black},
		{"white", White},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "#ff0000zz", "purple"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestRGBA_Hex(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{Transparent, "#00000000"},
		{RGBA{R: 1, A: 0.5}, "#ff000080"},
		{RGBA{R: 2, G: -1, B: 0, A: 1}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRGBA_TextRoundTrip(t *testing.T) {
	var c RGBA
	if err := c.UnmarshalText([]byte("#3366cc")); err != nil {
		t.Fatal(err)
	}
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "#3366cc" {
		t.Errorf("round trip = %q, want #3366cc", text)
	}
	if err := c.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText should reject invalid colors")
	}
}

func TestRGBA_Color(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 1}.Color()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
	if !Transparent.IsTransparent() || Black.IsTransparent() {
		t.Error("IsTransparent mismatch")
	}
}
