package phrasal

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// resultCache memoizes per-text analysis results. The same comment or post
// text is frequently re-analyzed across UI re-renders, so a small bounded
// cache pays for itself quickly.
//
// Keys are the raw input text. There is no configuration fingerprint in
// the key because an Analyzer's lexicon and configuration are immutable for
// its lifetime; each Analyzer owns its own cache. Entries are evicted
// least-recently-used with no expiry, and the cache is safe for concurrent
// callers.
type resultCache struct {
	entries *lru.Cache[string, AnalysisResult]
}

func newResultCache(size int) (*resultCache, error) {
	entries, err := lru.New[string, AnalysisResult](size)
	if err != nil {
		return nil, err
	}
	return &resultCache{entries: entries}, nil
}

func (c *resultCache) get(key string) (AnalysisResult, bool) {
	return c.entries.Get(key)
}

func (c *resultCache) add(key string, r AnalysisResult) {
	c.entries.Add(key, r)
}

func (c *resultCache) len() int {
	return c.entries.Len()
}
