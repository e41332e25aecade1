package bubble

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOuterSize(t *testing.T) {
	got := OuterSize(Size{Width: 100, Height: 40}, UniformInsets(5), 2, 5)
	assert.Equal(t, Size{Width: 114, Height: 61}, got)
}

func TestOuterSize_AsymmetricPadding(t *testing.T) {
	padding := Insets{Top: 1, Leading: 2, Bottom: 3, Trailing: 4}
	got := OuterSize(Size{Width: 10, Height: 20}, padding, 1, 6)
	assert.Equal(t, Size{Width: 10 + 2 + 4 + 2, Height: 20 + 1 + 3 + 6 + 3}, got)
}

func TestOuterSize_NegativeInputs(t *testing.T) {
	got := OuterSize(Size{Width: -5, Height: -5}, UniformInsets(-1), -2, -3)
	assert.Equal(t, Size{}, got)
}

func TestContentTopInset(t *testing.T) {
	padding := UniformInsets(5)
	assert.Equal(t, 14.0, ContentTopInset(ArrowTop, padding, 2, 5))
	assert.Equal(t, 7.0, ContentTopInset(ArrowBottom, padding, 2, 5))
}

func TestMeasure(t *testing.T) {
	content := Size{Width: 100, Height: 40}

	t.Run("bottom", func(t *testing.T) {
		l := Measure(content, DefaultStyle())
		assert.Equal(t, Size{Width: 114, Height: 61}, l.Size)
		assert.Equal(t, Rect{X: 7, Y: 7, Width: 100, Height: 40}, l.Content)
		require.NotNil(t, l.Path)
		assert.Equal(t, MoveTo{Point: Pt(64, 54)}, l.Path.Segments()[0])
	})

	t.Run("top", func(t *testing.T) {
		l := Measure(content, DefaultStyle().WithArrowAlignment(ArrowTop))
		assert.Equal(t, Size{Width: 114, Height: 61}, l.Size)
		assert.Equal(t, Rect{X: 7, Y: 14, Width: 100, Height: 40}, l.Content)
		assert.Equal(t, MoveTo{Point: Pt(64, 7)}, l.Path.Segments()[0])
	})

	t.Run("content fits inside the body", func(t *testing.T) {
		for _, a := range []ArrowAlignment{ArrowTop, ArrowBottom} {
			l := Measure(content, DefaultStyle().WithArrowAlignment(a))
			b := l.Path.Bounds()
			assert.GreaterOrEqual(t, l.Content.X, b.X)
			assert.LessOrEqual(t, l.Content.X+l.Content.Width, b.X+b.Width)
			assert.GreaterOrEqual(t, l.Content.Y, b.Y)
			assert.LessOrEqual(t, l.Content.Y+l.Content.Height, b.Y+b.Height)
		}
	})
}

func TestMeasure_RecomputeOnContentChange(t *testing.T) {
	s := DefaultStyle()
	small := Measure(Size{Width: 10, Height: 10}, s)
	large := Measure(Size{Width: 50, Height: 10}, s)
	assert.InDelta(t, 40, large.Size.Width-small.Size.Width, tol)
	assert.Equal(t, small.Size.Height, large.Size.Height)
}

func ExampleMeasure() {
	l := Measure(Size{Width: 100, Height: 40}, DefaultStyle())
	fmt.Println(l.Size)
	fmt.Println(l.Content)
	// Output:
	// {114 61}
	// {7 7 100 40}
}
