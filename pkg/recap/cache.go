package recap

import "sync"

// Cache memoizes Pattern registration by pattern text. Schema derivation is
// idempotent and side-effect-free, so concurrent redundant derivations would
// be harmless; the cache just makes registration at-most-once per distinct
// text. The zero value is ready to use and safe for concurrent callers.
type Cache struct {
	patterns sync.Map // pattern text -> *Pattern
}

// Compile returns the cached Pattern for text, registering it on first use.
// Failed registrations are not cached; registration is deterministic, so a
// retry cannot succeed, but callers fixing the text should not be served a
// stale error either.
func (c *Cache) Compile(pattern string) (*Pattern, error) {
	if p, ok := c.patterns.Load(pattern); ok {
		return p.(*Pattern), nil
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	// Two racing callers may both compile; either result is identical, so
	// keep whichever landed first.
	actual, _ := c.patterns.LoadOrStore(pattern, p)
	return actual.(*Pattern), nil
}

// Len reports how many distinct patterns are cached.
func (c *Cache) Len() int {
	n := 0
	c.patterns.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
