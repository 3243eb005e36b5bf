package phrasal

import (
	"math"
	"reflect"
	"testing"
)

func TestNGrams(t *testing.T) {
	tokens := []string{"a", "b", "c", "d"}
	tests := []struct {
		n        int
		expected [][]string
	}{
		{1, [][]string{{"a"}, {"b"}, {"c"}, {"d"}}},
		{2, [][]string{{"a", "b"}, {"b", "c"}, {"c", "d"}}},
		{3, [][]string{{"a", "b", "c"}, {"b", "c", "d"}}},
		{4, [][]string{{"a", "b", "c", "d"}}},
		{5, nil},
		{0, nil},
	}
	for _, tt := range tests {
		if got := NGrams(tokens, tt.n); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("NGrams(n=%d) = %v, want %v", tt.n, got, tt.expected)
		}
	}
}

func TestIsMeaningful(t *testing.T) {
	ext, err := NewExtractor(DefaultLexicon(), DefaultExtractorConfig())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ngram    []string
		expected bool
		desc     string
	}{
		{[]string{"good", "service"}, true, "ordinary bigram"},
		{[]string{"good", "good"}, false, "repeated token"},
		{[]string{"x", "service"}, false, "token shorter than two runes"},
		{[]string{"the", "and"}, false, "all stopwords"},
		{[]string{"خدمة", "ممتازة"}, true, "Arabic bigram"},
		{[]string{"good", "service", "good"}, false, "repeat across a trigram"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := ext.IsMeaningful(tt.ngram); got != tt.expected {
				t.Errorf("IsMeaningful(%v) = %v, want %v", tt.ngram, got, tt.expected)
			}
		})
	}
}

func TestIsMeaningfulBlocklist(t *testing.T) {
	lex := NewLexiconFromData(LexiconFile{
		Languages: map[string]LanguageLexicon{
			"en": {Meaningless: []string{"foo bar"}},
		},
	})
	ext, err := NewExtractor(lex, DefaultExtractorConfig())
	if err != nil {
		t.Fatal(err)
	}
	if ext.IsMeaningful([]string{"foo", "bar"}) {
		t.Error("blocklisted phrase reported as meaningful")
	}
	if !ext.IsMeaningful([]string{"foo", "baz"}) {
		t.Error("non-blocklisted phrase rejected")
	}
}

func TestPhrasesFromText(t *testing.T) {
	ext, err := NewExtractor(DefaultLexicon(), DefaultExtractorConfig())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("fewer than two tokens yields empty map", func(t *testing.T) {
		for _, text := range []string{"", "good", "the is on"} {
			got := ext.PhrasesFromText(text)
			if got == nil || len(got) != 0 {
				t.Errorf("PhrasesFromText(%q) = %v, want empty map", text, got)
			}
		}
	})

	t.Run("bigrams and trigrams counted", func(t *testing.T) {
		got := ext.PhrasesFromText("fast shipping arrived today")
		expected := map[string]int{
			"fast shipping":         1,
			"shipping arrived":      1,
			"arrived today":         1,
			"fast shipping arrived": 1,
			"shipping arrived today": 1,
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("PhrasesFromText = %v, want %v", got, expected)
		}
	})
}

// Ten texts each containing "good service" twice: frequency 20 with a PMI
// of exactly 1.0 passes both validation gates, while the reversed bigram
// "service good" lands at PMI 0 and is rejected.
func TestPhrasesFromCorpus(t *testing.T) {
	texts := make([]string, 10)
	for i := range texts {
		texts[i] = "good service good service"
	}

	ext, err := NewExtractor(DefaultLexicon(), DefaultExtractorConfig())
	if err != nil {
		t.Fatal(err)
	}
	got := ext.PhrasesFromCorpus(texts)

	if got.TotalWords != 40 {
		t.Errorf("TotalWords = %d, want 40", got.TotalWords)
	}
	if got.WordFreqs["good"] != 20 || got.WordFreqs["service"] != 20 {
		t.Errorf("WordFreqs = %v, want good=20 service=20", got.WordFreqs)
	}
	if got.Phrases["good service"] != 20 {
		t.Errorf("validated frequency = %d, want 20", got.Phrases["good service"])
	}
	if pmi := got.PMIScores["good service"]; math.Abs(pmi-1.0) > 1e-12 {
		t.Errorf("PMI(good service) = %g, want 1.0", pmi)
	}
	if _, ok := got.Phrases["service good"]; ok {
		t.Error("low-PMI bigram survived validation")
	}
	if pmi := got.PMIScores["service good"]; pmi != 0.0 {
		t.Errorf("PMI(service good) = %g, want 0.0", pmi)
	}
}

func TestPhrasesFromCorpusWorkerDeterminism(t *testing.T) {
	texts := []string{
		"good service good service",
		"fast shipping arrived today",
		"terrible packaging awful box",
		"good service fast shipping",
		"fast shipping good service",
		"awful box terrible packaging",
	}

	serialCfg := DefaultExtractorConfig()
	serial, err := NewExtractor(DefaultLexicon(), serialCfg)
	if err != nil {
		t.Fatal(err)
	}
	parallelCfg := DefaultExtractorConfig()
	parallelCfg.Workers = 4
	parallel, err := NewExtractor(DefaultLexicon(), parallelCfg)
	if err != nil {
		t.Fatal(err)
	}

	a, b := serial.PhrasesFromCorpus(texts), parallel.PhrasesFromCorpus(texts)
	if !reflect.DeepEqual(a.Phrases, b.Phrases) {
		t.Errorf("validated phrases differ: %v vs %v", a.Phrases, b.Phrases)
	}
	if !reflect.DeepEqual(a.Raw, b.Raw) {
		t.Errorf("raw phrases differ: %v vs %v", a.Raw, b.Raw)
	}
	if a.TotalWords != b.TotalWords {
		t.Errorf("totals differ: %d vs %d", a.TotalWords, b.TotalWords)
	}
}

func TestTopPhrasesOrdering(t *testing.T) {
	got := topCounts(map[string]int{
		"good service": 5,
		"fast shipping": 5,
		"rare phrase":  1,
	}, 2)
	expected := []PhraseCount{
		{Phrase: "fast shipping", Count: 5},
		{Phrase: "good service", Count: 5},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("topCounts = %v, want %v", got, expected)
	}
}

func TestExtractorConfigValidation(t *testing.T) {
	bad := []ExtractorConfig{
		{MinFrequency: 0, MinPMI: 1, MaxPhraseLength: 3},
		{MinFrequency: 2, MinPMI: -1, MaxPhraseLength: 3},
		{MinFrequency: 2, MinPMI: 1, MaxPhraseLength: 1},
		{MinFrequency: 2, MinPMI: 1, MaxPhraseLength: 3, Workers: -1},
	}
	for _, cfg := range bad {
		if _, err := NewExtractor(DefaultLexicon(), cfg); err == nil {
			t.Errorf("NewExtractor(%+v) accepted invalid config", cfg)
		}
	}
}
