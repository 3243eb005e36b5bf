package phrasal

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// ExtractorConfig controls n-gram generation and statistical validation.
type ExtractorConfig struct {
	MinFrequency    int     // corpus frequency gate for validated phrases
	MinPMI          float64 // PMI gate for validated phrases
	MaxPhraseLength int     // largest n-gram window, in tokens
	Workers         int     // corpus shards processed concurrently; 0 means 1
}

// DefaultExtractorConfig returns the standard extraction parameters.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		MinFrequency:    2,
		MinPMI:          1.0,
		MaxPhraseLength: 3,
		Workers:         1,
	}
}

func (c ExtractorConfig) validate() error {
	if c.MinFrequency < 1 {
		return fmt.Errorf("extractor: MinFrequency must be at least 1, got %d", c.MinFrequency)
	}
	if c.MinPMI < 0 {
		return fmt.Errorf("extractor: MinPMI must be non-negative, got %g", c.MinPMI)
	}
	if c.MaxPhraseLength < 2 {
		return fmt.Errorf("extractor: MaxPhraseLength must be at least 2, got %d", c.MaxPhraseLength)
	}
	if c.Workers < 0 {
		return fmt.Errorf("extractor: Workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// An Extractor generates candidate collocations from documents and
// accumulates corpus-wide frequency tables.
type Extractor struct {
	cfg ExtractorConfig
	lex *Lexicon
	tok *Tokenizer
}

// NewExtractor creates an Extractor. Invalid configuration fails fast.
func NewExtractor(lex *Lexicon, cfg ExtractorConfig) (*Extractor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	return &Extractor{
		cfg: cfg,
		lex: lex,
		tok: NewTokenizer(lex),
	}, nil
}

// NGrams returns the contiguous windows of size n over tokens.
func NGrams(tokens []string, n int) [][]string {
	if n < 1 || len(tokens) < n {
		return nil
	}
	grams := make([][]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, tokens[i:i+n])
	}
	return grams
}

// IsMeaningful reports whether an n-gram is a plausible phrase: no token
// repeats, no token shorter than two runes, the joined phrase is not
// blocklisted, and at least one token is not a stopword.
func (e *Extractor) IsMeaningful(ngram []string) bool {
	seen := make(map[string]struct{}, len(ngram))
	allStop := true
	for _, tok := range ngram {
		if _, dup := seen[tok]; dup {
			return false
		}
		seen[tok] = struct{}{}
		if utf8.RuneCountInString(tok) < 2 {
			return false
		}
		if !e.lex.IsStopword(tok) {
			allStop = false
		}
	}
	if allStop {
		return false
	}
	return !e.lex.IsMeaningless(strings.Join(ngram, " "))
}

// PhrasesFromText tokenizes one text and returns its meaningful n-gram
// frequencies. Texts with fewer than two filtered tokens yield an empty map.
func (e *Extractor) PhrasesFromText(text string) map[string]int {
	return e.phrasesFromTokens(e.tok.Tokenize(text))
}

func (e *Extractor) phrasesFromTokens(tokens []string) map[string]int {
	freqs := make(map[string]int)
	if len(tokens) < 2 {
		return freqs
	}
	for n := 2; n <= e.cfg.MaxPhraseLength && n <= len(tokens); n++ {
		for _, gram := range NGrams(tokens, n) {
			if e.IsMeaningful(gram) {
				freqs[strings.Join(gram, " ")]++
			}
		}
	}
	return freqs
}

// PhrasesFromCorpus accumulates phrase and single-token frequencies over
// all texts, then applies the two-gate validation: a phrase is retained
// when its frequency meets MinFrequency and its PMI meets MinPMI. With
// Workers > 1 the corpus is sharded and partial counters are merged, so
// the result is independent of scheduling.
func (e *Extractor) PhrasesFromCorpus(texts []string) *CorpusPhrases {
	partials := e.accumulate(texts)

	merged := corpusPartial{
		phrases: make(map[string]int),
		words:   make(map[string]int),
	}
	for _, p := range partials {
		for phrase, n := range p.phrases {
			merged.phrases[phrase] += n
		}
		for word, n := range p.words {
			merged.words[word] += n
		}
		merged.total += p.total
	}

	out := &CorpusPhrases{
		Phrases:    make(map[string]int),
		Raw:        merged.phrases,
		WordFreqs:  merged.words,
		TotalWords: merged.total,
		PMIScores:  make(map[string]float64),
	}
	for phrase, freq := range merged.phrases {
		if freq < e.cfg.MinFrequency {
			continue
		}
		pmi := PMI(strings.Split(phrase, " "), freq, merged.words, merged.total)
		out.PMIScores[phrase] = pmi
		if pmi >= e.cfg.MinPMI {
			out.Phrases[phrase] = freq
		}
	}
	return out
}

type corpusPartial struct {
	phrases map[string]int
	words   map[string]int
	total   int
}

func (e *Extractor) accumulate(texts []string) []corpusPartial {
	workers := e.cfg.Workers
	if workers > len(texts) {
		workers = len(texts)
	}
	if workers <= 1 {
		return []corpusPartial{e.accumulateShard(texts)}
	}

	partials := make([]corpusPartial, workers)
	var wg sync.WaitGroup
	chunk := (len(texts) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(texts) {
			end = len(texts)
		}
		wg.Add(1)
		go func(w int, shard []string) {
			defer wg.Done()
			partials[w] = e.accumulateShard(shard)
		}(w, texts[start:end])
	}
	wg.Wait()
	return partials
}

func (e *Extractor) accumulateShard(texts []string) corpusPartial {
	p := corpusPartial{
		phrases: make(map[string]int),
		words:   make(map[string]int),
	}
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		tokens := e.tok.Tokenize(text)
		for phrase, n := range e.phrasesFromTokens(tokens) {
			p.phrases[phrase] += n
		}
		for _, tok := range tokens {
			p.words[tok]++
			p.total++
		}
	}
	return p
}

// TopPhrases extracts and validates corpus phrases, returning the topN most
// frequent in descending order. Ties break lexicographically so the result
// is deterministic.
func (e *Extractor) TopPhrases(texts []string, topN int) []PhraseCount {
	validated := e.PhrasesFromCorpus(texts).Phrases
	return topCounts(validated, topN)
}

func topCounts(freqs map[string]int, topN int) []PhraseCount {
	counts := make([]PhraseCount, 0, len(freqs))
	for phrase, n := range freqs {
		counts = append(counts, PhraseCount{Phrase: phrase, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Phrase < counts[j].Phrase
	})
	if topN >= 0 && topN < len(counts) {
		counts = counts[:topN]
	}
	return counts
}
