package phrasal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCacheEviction(t *testing.T) {
	c, err := newResultCache(2)
	require.NoError(t, err)

	a := AnalysisResult{Score: 0.6, Label: Positive}
	b := AnalysisResult{Score: -0.6, Label: Negative}
	d := AnalysisResult{Label: Neutral}

	c.add("a", a)
	c.add("b", b)
	assert.Equal(t, 2, c.len())

	c.add("c", d)
	assert.Equal(t, 2, c.len(), "cache stays bounded")
	_, ok := c.get("a")
	assert.False(t, ok, "oldest entry evicted")

	got, ok := c.get("b")
	assert.True(t, ok)
	assert.Equal(t, b, got)
}

func TestResultCacheRecency(t *testing.T) {
	c, err := newResultCache(2)
	require.NoError(t, err)

	c.add("a", AnalysisResult{Score: 0.1})
	c.add("b", AnalysisResult{Score: 0.2})
	_, ok := c.get("a") // refresh "a"
	require.True(t, ok)

	c.add("c", AnalysisResult{Score: 0.3})
	_, ok = c.get("b")
	assert.False(t, ok, "least recently used entry evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
}

func TestResultCacheInvalidSize(t *testing.T) {
	_, err := newResultCache(0)
	assert.Error(t, err)
}

func TestAnalyzerCacheDisabled(t *testing.T) {
	cfg := DefaultAnalyzerConfig()
	cfg.CacheSize = 0
	a, err := NewAnalyzer(DefaultLexicon(), cfg)
	require.NoError(t, err)

	first := a.AnalyzeText("thank you so much")
	second := a.AnalyzeText("thank you so much")
	assert.Equal(t, first, second, "results identical with caching disabled")
}

func TestAnalyzerCacheBounded(t *testing.T) {
	cfg := DefaultAnalyzerConfig()
	cfg.CacheSize = 4
	a, err := NewAnalyzer(DefaultLexicon(), cfg)
	require.NoError(t, err)

	texts := []string{"one two", "three four", "five six", "seven eight", "nine ten", "eleven twelve"}
	for _, text := range texts {
		a.AnalyzeText(text)
	}
	assert.LessOrEqual(t, a.cache.len(), 4)
}
