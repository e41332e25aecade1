package text

import (
	"sync"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measurers(t *testing.T) map[string]Measurer {
	t.Helper()
	out := make(map[string]Measurer)
	for _, name := range []string{BackendBuiltin, BackendGoText} {
		m, err := NewMeasurer(name, nil)
		require.NoError(t, err)
		out[name] = m
	}
	return out
}

func TestMeasureSingleLine(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			size, err := m.Measure("Hello", 16)
			require.NoError(t, err)
			assert.Greater(t, size.Width, 0.0)
			assert.Greater(t, size.Height, 0.0)
		})
	}
}

func TestMeasureMonotonic(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			short, err := m.Measure("Hi", 16)
			require.NoError(t, err)
			long, err := m.Measure("Hi there, bubble", 16)
			require.NoError(t, err)
			big, err := m.Measure("Hi", 32)
			require.NoError(t, err)

			assert.Greater(t, long.Width, short.Width)
			assert.Equal(t, short.Height, long.Height)
			assert.Greater(t, big.Width, short.Width)
			assert.Greater(t, big.Height, short.Height)
		})
	}
}

func TestMeasureMultiline(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			one, err := m.Measure("wide line here", 14)
			require.NoError(t, err)
			two, err := m.Measure("wide line here\nab", 14)
			require.NoError(t, err)
			trailing, err := m.Measure("wide line here\nab\n", 14)
			require.NoError(t, err)

			assert.InDelta(t, one.Width, two.Width, 1e-9, "widest line wins")
			assert.InDelta(t, 2*one.Height, two.Height, 1e-9)
			assert.Equal(t, two, trailing, "a trailing newline adds no line")
		})
	}
}

func TestMeasureEmpty(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			size, err := m.Measure("", 16)
			require.NoError(t, err)
			assert.Zero(t, size)

			size, err = m.Measure("text", 0)
			require.NoError(t, err)
			assert.Zero(t, size)
		})
	}
}

func TestMeasureConcurrent(t *testing.T) {
	for name, m := range measurers(t) {
		t.Run(name, func(t *testing.T) {
			want, err := m.Measure("concurrent", 12)
			require.NoError(t, err)

			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					got, err := m.Measure("concurrent", 12)
					assert.NoError(t, err)
					assert.Equal(t, want, got)
				}()
			}
			wg.Wait()
		})
	}
}

func TestNewMeasurerUnknown(t *testing.T) {
	_, err := NewMeasurer("freetype", nil)
	assert.ErrorIs(t, err, ErrUnknownMeasurer)
}

func TestNewMeasurerCaseInsensitive(t *testing.T) {
	m, err := NewMeasurer("GoText", nil)
	require.NoError(t, err)
	assert.IsType(t, &GoTextMeasurer{}, m)

	m, err = NewMeasurer("", nil)
	require.NoError(t, err)
	assert.IsType(t, &BuiltinMeasurer{}, m)
}

func TestMeasureBadFont(t *testing.T) {
	src, err := NewFontSource([]byte("not a font"), "junk")
	require.NoError(t, err)

	for _, m := range []Measurer{NewBuiltinMeasurer(src), NewGoTextMeasurer(src)} {
		_, err := m.Measure("x", 12)
		assert.Error(t, err)
	}
}

func TestBidiRuns(t *testing.T) {
	runs := bidiRuns([]rune("hello"))
	require.Len(t, runs, 1)
	assert.Equal(t, run{start: 0, end: 5, dir: di.DirectionLTR}, runs[0])

	mixed := []rune("abc שלום")
	runs = bidiRuns(mixed)
	require.GreaterOrEqual(t, len(runs), 2)

	covered := 0
	var sawRTL bool
	for _, r := range runs {
		covered += r.end - r.start
		if r.dir == di.DirectionRTL {
			sawRTL = true
		}
	}
	assert.Equal(t, len(mixed), covered, "runs cover every rune once")
	assert.True(t, sawRTL)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a"}, splitLines("a"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb"))
}

func TestGoTextMeasurerParsesFontOnce(t *testing.T) {
	m := NewGoTextMeasurer(DefaultFontSource())
	first, err := m.font()
	require.NoError(t, err)
	second, err := m.font()
	require.NoError(t, err)
	assert.Same(t, first, second)

	bad, err := NewFontSource([]byte("not a font"), "junk")
	require.NoError(t, err)
	_, err = NewGoTextMeasurer(bad).font()
	assert.ErrorContains(t, err, "junk")
}
