// Package phrasal extracts recurring multi-word expressions from corpora of
// short Arabic and English social-media texts and scores their sentiment.
//
// The pipeline is lexicon-driven end to end: a phrase-preserving tokenizer
// keeps known sentiment idioms ("thank you", "ليس سيئا") intact through
// normalization, a collocation extractor accumulates n-gram frequencies,
// pointwise mutual information separates real collocations from words that
// merely co-occur, and a scorer blends curated phrase scores with modifier
// context, falling back to word and emoji counting for texts too short to
// carry a phrase.
//
// The package-level functions cover the common cases with shared default
// components; construct a Lexicon, Extractor, and Analyzer directly to
// inject custom dictionaries or tune parameters.
package phrasal

import "sync"

var (
	defaultAnalyzersMu sync.Mutex
	defaultAnalyzers   = make(map[Language]*Analyzer)

	defaultExtractorOnce sync.Once
	defaultExtractorVal  *Extractor
)

func defaultAnalyzer(lang Language) *Analyzer {
	defaultAnalyzersMu.Lock()
	defer defaultAnalyzersMu.Unlock()
	if a, ok := defaultAnalyzers[lang]; ok {
		return a
	}
	cfg := DefaultAnalyzerConfig()
	cfg.Language = lang
	a, err := NewAnalyzer(DefaultLexicon(), cfg)
	if err != nil {
		// Default configuration is known valid for every Language constant.
		panic(err)
	}
	defaultAnalyzers[lang] = a
	return a
}

func defaultExtractor() *Extractor {
	defaultExtractorOnce.Do(func() {
		ext, err := NewExtractor(DefaultLexicon(), DefaultExtractorConfig())
		if err != nil {
			panic(err)
		}
		defaultExtractorVal = ext
	})
	return defaultExtractorVal
}

// ExtractTopPhrases returns the topN PMI-validated phrases of a corpus in
// descending frequency order, using default extraction parameters.
func ExtractTopPhrases(texts []string, topN int) []PhraseCount {
	return defaultExtractor().TopPhrases(texts, topN)
}

// AnalyzeText analyzes one text under the given language scope with the
// shared default Analyzer for that scope.
func AnalyzeText(text string, lang Language) AnalysisResult {
	return defaultAnalyzer(lang).AnalyzeText(text)
}

// AnalyzeCorpus analyzes a corpus under the given language scope with the
// shared default Analyzer for that scope.
func AnalyzeCorpus(texts []string, lang Language) CorpusResult {
	return defaultAnalyzer(lang).AnalyzeCorpus(texts)
}

// PhraseScore returns the lexicon-and-modifier sentiment score of a single
// phrase, with no corpus context. Useful for per-word coloring in
// visualization layers.
func PhraseScore(phrase string, lang Language) float64 {
	return defaultAnalyzer(lang).ScorePhrase(phrase).Score
}

// PhraseLabel returns the sentiment label of a single phrase, derived from
// PhraseScore through the shared thresholds.
func PhraseLabel(phrase string, lang Language) Label {
	return defaultAnalyzer(lang).ScorePhrase(phrase).Label
}
