package analyzer

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/cshm/model"
)

// Cache is a fingerprint-keyed, per-Analyzer-instance memoization of
// completed AnalysisResults. Concurrent GetOrCompute calls for the same
// fingerprint coalesce onto one in-flight computation via a
// singleflight.Group, per spec.md §5's "at-most-one-concurrent-compute"
// shared-cache discipline.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]model.AnalysisResult
	group   singleflight.Group
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]model.AnalysisResult)}
}

// Get returns the cached result for fingerprint, if any.
func (c *Cache) Get(fingerprint string) (model.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[fingerprint]
	return res, ok
}

// GetOrCompute returns the cached result for fingerprint, or runs compute
// and caches its result. A result whose Err field is non-empty (including
// "cancelled") is never written to the cache.
func (c *Cache) GetOrCompute(fingerprint string, compute func() (model.AnalysisResult, error)) (model.AnalysisResult, error) {
	if res, ok := c.Get(fingerprint); ok {
		return res, nil
	}

	v, err, _ := c.group.Do(fingerprint, func() (interface{}, error) {
		res, computeErr := compute()
		if computeErr == nil && res.Err == "" {
			c.mu.Lock()
			c.entries[fingerprint] = res
			c.mu.Unlock()
		}
		return res, computeErr
	})

	res, _ := v.(model.AnalysisResult)
	return res, err
}

// Clear discards every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]model.AnalysisResult)
}
