// Package cache provides a small generic LRU cache.
//
// The text package keeps measured label sizes in it so that relayout of an
// unchanged label does not shape the text again.
//
//	c := cache.New[string, int](64)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
