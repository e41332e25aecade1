package text

import (
	"math"

	"github.com/gogpu/bubble"
	"github.com/gogpu/bubble/internal/cache"
)

// DefaultCacheSize is the number of measurements a CachedMeasurer keeps
// when created with a non-positive size.
const DefaultCacheSize = 256

type measureKey struct {
	text string
	size float64
}

// CachedMeasurer remembers the results of another Measurer. Relayout of a
// bubble whose label did not change then costs a map lookup instead of a
// shaping pass. Errors and NaN sizes are not cached.
type CachedMeasurer struct {
	m     Measurer
	cache *cache.Cache[measureKey, bubble.Size]
}

// NewCachedMeasurer wraps m with an LRU cache of the given size.
func NewCachedMeasurer(m Measurer, size int) *CachedMeasurer {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedMeasurer{m: m, cache: cache.New[measureKey, bubble.Size](size)}
}

// Measure implements Measurer.
func (c *CachedMeasurer) Measure(s string, size float64) (bubble.Size, error) {
	// A NaN key never matches itself and could not be evicted.
	if math.IsNaN(size) {
		return c.m.Measure(s, size)
	}
	key := measureKey{text: s, size: size}
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}
	v, err := c.m.Measure(s, size)
	if err != nil {
		return bubble.Size{}, err
	}
	c.cache.Set(key, v)
	return v, nil
}

// Stats returns hit and miss counts of the underlying cache.
func (c *CachedMeasurer) Stats() cache.Stats {
	return c.cache.Stats()
}
