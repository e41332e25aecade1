package bubble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	assert.Equal(t, ArrowBottom, s.ArrowAlignment)
	assert.Equal(t, 5.0, s.ArrowHeight)
	assert.Equal(t, Point{}, s.ArrowOffset)
	assert.Equal(t, Transparent, s.Background)
	assert.Equal(t, Border{Radius: 5, Width: 2, Color: Black}, s.Border)
	assert.Equal(t, Insets{Top: 5, Leading: 5, Bottom: 5, Trailing: 5}, s.InnerPadding)
}

func TestStyle_WithMethodsCopy(t *testing.T) {
	base := DefaultStyle()
	orig := base

	tests := []struct {
		name  string
		apply func(Style) Style
		check func(t *testing.T, s Style)
	}{
		{"ArrowAlignment", func(s Style) Style { return s.WithArrowAlignment(ArrowTop) },
			func(t *testing.T, s Style) { assert.Equal(t, ArrowTop, s.ArrowAlignment) }},
		{"ArrowHeight", func(s Style) Style { return s.WithArrowHeight(9) },
			func(t *testing.T, s Style) { assert.Equal(t, 9.0, s.ArrowHeight) }},
		{"ArrowOffset", func(s Style) Style { return s.WithArrowOffset(3, -4) },
			func(t *testing.T, s Style) { assert.Equal(t, Pt(3, -4), s.ArrowOffset) }},
		{"Background", func(s Style) Style { return s.WithBackground(White) },
			func(t *testing.T, s Style) { assert.Equal(t, White, s.Background) }},
		{"Border", func(s Style) Style { return s.WithBorder(Border{Radius: 1, Width: 1}) },
			func(t *testing.T, s Style) { assert.Equal(t, Border{Radius: 1, Width: 1}, s.Border) }},
		{"InnerPadding", func(s Style) Style { return s.WithInnerPadding(UniformInsets(8)) },
			func(t *testing.T, s Style) { assert.Equal(t, UniformInsets(8), s.InnerPadding) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.apply(base))
			assert.Equal(t, orig, base, "receiver must not change")
		})
	}
}

func TestArrowAlignment(t *testing.T) {
	for _, a := range []ArrowAlignment{ArrowTop, ArrowBottom} {
		assert.True(t, a.Horizontal(), a.String())
		assert.False(t, a.Vertical(), a.String())
	}

	a, err := ParseArrowAlignment(" Top ")
	require.NoError(t, err)
	assert.Equal(t, ArrowTop, a)

	_, err = ParseArrowAlignment("leading")
	assert.ErrorIs(t, err, ErrUnknownAlignment)

	var b ArrowAlignment
	require.NoError(t, b.UnmarshalText([]byte("bottom")))
	assert.Equal(t, ArrowBottom, b)
	text, err := ArrowTop.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "top", string(text))
}
