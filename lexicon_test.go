package phrasal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	require.NotNil(t, lex)
	assert.Greater(t, lex.Size(), 100, "built-in tables should be substantial")

	assert.True(t, lex.IsStopword("the"))
	assert.True(t, lex.IsStopword("THE"), "stopword check folds case")
	assert.True(t, lex.IsStopword("في"))
	assert.False(t, lex.IsStopword("excellent"))

	assert.Equal(t, 1.0, lex.Score("thank you", Auto))
	assert.Equal(t, -1.0, lex.Score("terrible service", English))
	assert.Equal(t, 1.0, lex.Score("خدمة ممتازة", Arabic))
	assert.Equal(t, 0.0, lex.Score("خدمة ممتازة", English), "Arabic entry invisible to English scope")
	assert.Equal(t, 0.0, lex.Score("purple table", Auto))

	assert.Equal(t, 1.5, lex.ModifierWeight("very"))
	assert.Equal(t, -1.0, lex.ModifierWeight("not"))
	assert.Equal(t, 0.0, lex.ModifierWeight("table"))
}

func TestLexiconContextPrecedence(t *testing.T) {
	lex := DefaultLexicon()
	// "not bad" scores positive from the context table despite "bad".
	assert.Equal(t, 0.6, lex.Score("not bad", Auto))
	assert.Equal(t, 0.6, lex.Score("not bad", Arabic), "context table ignores language scope")
	assert.Equal(t, 0.6, lex.Score("ليس سيئا", English))
}

func TestPreservePhrasesOrdering(t *testing.T) {
	phrases := DefaultLexicon().PreservePhrases()
	require.NotEmpty(t, phrases)

	prev := utf8.RuneCountInString(phrases[0]) + 1
	for _, p := range phrases {
		assert.Contains(t, p, " ", "preserve list holds multi-word phrases only")
		n := utf8.RuneCountInString(p)
		assert.LessOrEqual(t, n, prev, "preserve list must be longest first")
		prev = n
	}
}

func TestNewLexiconFromData(t *testing.T) {
	lex := NewLexiconFromData(LexiconFile{
		Languages: map[string]LanguageLexicon{
			"en": {
				Positive:  map[string]float64{"Foo Bar": 0.9},
				Modifiers: map[string]float64{"MEGA": 1.5},
				Stopwords: []string{"Zork"},
			},
		},
	})

	assert.Equal(t, 0.9, lex.Score("foo bar", Auto), "keys lowercased on merge")
	assert.Equal(t, 1.5, lex.ModifierWeight("mega"))
	assert.True(t, lex.IsStopword("zork"))
	assert.Equal(t, 0.0, lex.Score("thank you", Auto), "synthetic lexicon carries no defaults")
	assert.Equal(t, []string{"foo bar"}, lex.PreservePhrases())
}

func TestNewLexiconMergesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	content := strings.TrimSpace(`
languages:
  en:
    stopwords: ["zork"]
    positive:
      cool beans: 0.9
      superb deal: 3.0
    context:
      no worries: 0.5
  ar:
    negative:
      تجربة سيئة: -0.9
  fr:
    positive:
      tres bien: 0.8
`)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := NewLexicon(path)
	require.NoError(t, err)

	assert.Equal(t, 0.9, lex.Score("cool beans", English))
	assert.Equal(t, 1.0, lex.Score("superb deal", English), "scores clamped to [-1, 1]")
	assert.Equal(t, 0.5, lex.Score("no worries", Arabic), "context entries ignore scope")
	assert.Equal(t, -0.9, lex.Score("تجربة سيئة", Arabic))
	assert.True(t, lex.IsStopword("zork"))
	assert.Equal(t, 0.0, lex.Score("tres bien", Auto), "unknown language keys are skipped")
	assert.Equal(t, 1.0, lex.Score("thank you", Auto), "defaults survive the merge")
}

func TestNewLexiconMergesJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.json")
	content := `{"languages":{"en":{"positive":{"neat trick":0.7}}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := NewLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, 0.7, lex.Score("neat trick", English))
}

func TestNewLexiconFileErrors(t *testing.T) {
	_, err := NewLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing file")

	dir := t.TempDir()
	path := filepath.Join(dir, "extra.txt")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o644))
	_, err = NewLexicon(path)
	assert.Error(t, err, "unsupported extension")

	path = filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("languages: ["), 0o644))
	_, err = NewLexicon(path)
	assert.Error(t, err, "malformed YAML")
}

func TestFallbackCounts(t *testing.T) {
	lex := DefaultLexicon()

	pos, neg := lex.FallbackCounts("this is good, really GOOD but also bad")
	assert.Equal(t, 1, pos, "repeated entries count once")
	assert.Equal(t, 1, neg)

	pos, neg = lex.FallbackCounts("😢😢 👎")
	assert.Equal(t, 0, pos)
	assert.Equal(t, 2, neg, "distinct emoji count separately")

	pos, neg = lex.FallbackCounts("nothing to see")
	assert.Equal(t, 0, pos)
	assert.Equal(t, 0, neg)
}
