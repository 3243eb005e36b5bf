package phrasal

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// AnalyzerConfig configures sentiment scoring.
//
// The blend weights and modifier constants default to the empirically
// chosen values of the reference dictionaries; they are exposed rather than
// hardcoded because no derivation backs them.
type AnalyzerConfig struct {
	Language            Language
	MinPhraseConfidence float64 // phrases below this confidence are discarded
	UseContext          bool    // enable modifier-based context adjustment

	BaseWeight             float64 // lexicon score weight in the context blend
	ContextWeight          float64 // modifier score weight in the context blend
	ModifierImpact         float64 // context score contribution per modifier
	ModifierConfidenceStep float64 // context confidence contribution per modifier

	MaxPhraseLength int // candidate n-gram window for text analysis
	CacheSize       int // bounded LRU over per-text results; 0 disables caching
}

// DefaultAnalyzerConfig returns the standard scoring parameters.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Language:               Auto,
		MinPhraseConfidence:    0.6,
		UseContext:             true,
		BaseWeight:             0.7,
		ContextWeight:          0.3,
		ModifierImpact:         0.1,
		ModifierConfidenceStep: 0.2,
		MaxPhraseLength:        3,
		CacheSize:              1000,
	}
}

func (c AnalyzerConfig) validate() error {
	switch c.Language {
	case English, Arabic, Auto:
	default:
		return fmt.Errorf("analyzer: unknown language %q", c.Language)
	}
	if c.MinPhraseConfidence < 0 || c.MinPhraseConfidence > 1 {
		return fmt.Errorf("analyzer: MinPhraseConfidence must be in [0, 1], got %g", c.MinPhraseConfidence)
	}
	if c.BaseWeight < 0 || c.ContextWeight < 0 {
		return fmt.Errorf("analyzer: blend weights must be non-negative, got %g/%g", c.BaseWeight, c.ContextWeight)
	}
	if c.MaxPhraseLength < 2 {
		return fmt.Errorf("analyzer: MaxPhraseLength must be at least 2, got %d", c.MaxPhraseLength)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("analyzer: CacheSize must be non-negative, got %d", c.CacheSize)
	}
	return nil
}

// An Analyzer scores phrases and texts against a Lexicon. A single
// Analyzer is safe for concurrent use; its configuration and lexicon are
// immutable for its lifetime.
type Analyzer struct {
	cfg  AnalyzerConfig
	lex  *Lexicon
	tok  *Tokenizer
	norm *Normalizer
	ext  *Extractor

	// Per-analyzer phrase memo. Unbounded by design: the phrase space of
	// one corpus is small, and the result cache bounds end-to-end memory.
	memoMu sync.RWMutex
	memo   map[string]PhraseSentiment

	cache *resultCache
}

// NewAnalyzer creates an Analyzer over the given Lexicon. Invalid
// configuration fails fast.
func NewAnalyzer(lex *Lexicon, cfg AnalyzerConfig) (*Analyzer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	extCfg := DefaultExtractorConfig()
	extCfg.MaxPhraseLength = cfg.MaxPhraseLength
	ext, err := NewExtractor(lex, extCfg)
	if err != nil {
		return nil, err
	}
	a := &Analyzer{
		cfg:  cfg,
		lex:  lex,
		tok:  NewTokenizer(lex),
		norm: NewNormalizer(),
		ext:  ext,
		memo: make(map[string]PhraseSentiment),
	}
	if cfg.CacheSize > 0 {
		cache, err := newResultCache(cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		a.cache = cache
	}
	return a, nil
}

// ScorePhrase scores a single phrase: context-dependent table first, then
// the positive/negative lexicons under the configured language scope, then
// the modifier-based context adjustment. Results are memoized for the
// lifetime of the Analyzer.
func (a *Analyzer) ScorePhrase(phrase string) PhraseSentiment {
	key := strings.ToLower(strings.TrimSpace(phrase))

	a.memoMu.RLock()
	cached, ok := a.memo[key]
	a.memoMu.RUnlock()
	if ok {
		return cached
	}

	base := a.lex.Score(key, a.cfg.Language)
	confidence := math.Abs(base)
	score := base

	if a.cfg.UseContext {
		ctxScore, ctxConfidence := a.phraseContext(key)
		if ctxConfidence > 0.5 {
			// Modifiers inside an idiomatic phrase nudge the curated
			// score, they never override it.
			score = base*a.cfg.BaseWeight + ctxScore*a.cfg.ContextWeight
			confidence = confidence*a.cfg.BaseWeight + ctxConfidence*a.cfg.ContextWeight
		}
	}

	result := PhraseSentiment{
		Score:      clampScore(score),
		Label:      LabelForScore(clampScore(score)),
		Confidence: clampConfidence(confidence),
	}

	a.memoMu.Lock()
	a.memo[key] = result
	a.memoMu.Unlock()
	return result
}

// phraseContext accumulates modifier contributions from the phrase's own
// words: each modifier adds ModifierImpact times its weight to the context
// score and one ModifierConfidenceStep to the context confidence.
func (a *Analyzer) phraseContext(phrase string) (score, confidence float64) {
	for _, word := range strings.Fields(phrase) {
		if w := a.lex.ModifierWeight(word); w != 0 {
			score += w * a.cfg.ModifierImpact
			confidence += a.cfg.ModifierConfidenceStep
		}
	}
	if confidence > 0 {
		score = clampScore(score)
		confidence = clampConfidence(confidence)
	}
	return score, confidence
}

// AnalyzeText analyzes one text. Phrase candidates are scored and
// confidence-filtered; when none qualify, word-level fallback counting
// takes over and the result is flagged accordingly.
func (a *Analyzer) AnalyzeText(text string) AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return AnalysisResult{Label: Neutral, Phrases: []PhraseMatch{}}
	}

	if a.cache != nil {
		if r, ok := a.cache.get(text); ok {
			return r
		}
	}

	cleaned := a.norm.Clean(text)
	result := a.analyzeCleaned(cleaned)

	if a.cache != nil {
		a.cache.add(text, result)
	}
	return result
}

func (a *Analyzer) analyzeCleaned(cleaned string) AnalysisResult {
	matches := []PhraseMatch{}
	var scores, confs []float64

	for _, cand := range a.phraseCandidates(cleaned) {
		s := a.ScorePhrase(cand.phrase)
		if s.Confidence < a.cfg.MinPhraseConfidence {
			continue
		}
		matches = append(matches, PhraseMatch{
			Phrase:     cand.phrase,
			Score:      s.Score,
			Label:      s.Label,
			Confidence: s.Confidence,
			Start:      cand.start,
			End:        cand.end,
		})
		scores = append(scores, s.Score)
		confs = append(confs, s.Confidence)
	}

	if len(matches) > 0 {
		total := floats.Sum(confs)
		score := 0.0
		if total > 0 {
			score = floats.Dot(scores, confs) / total
		}
		return AnalysisResult{
			Score:      score,
			Label:      LabelForScore(score),
			Confidence: total / float64(len(matches)),
			Phrases:    matches,
		}
	}

	score, confidence := a.wordFallback(cleaned)
	return AnalysisResult{
		Score:        score,
		Label:        LabelForScore(score),
		Confidence:   confidence,
		Phrases:      matches,
		WordFallback: true,
	}
}

type phraseCandidate struct {
	phrase string
	start  int
	end    int
}

// phraseCandidates lists scored-phrase candidates in the cleaned text with
// their byte offsets, ordered by position. Candidates are the meaningful
// n-grams of the token stream plus any restored multi-word sentiment
// phrases, which are single tokens after tokenization. Candidates whose
// joined form cannot be located in the cleaned text are dropped.
func (a *Analyzer) phraseCandidates(cleaned string) []phraseCandidate {
	tokens := a.tok.Tokenize(cleaned)
	lower := strings.ToLower(cleaned)

	var out []phraseCandidate
	locate := func(phrase string) {
		if idx := strings.Index(lower, phrase); idx >= 0 {
			out = append(out, phraseCandidate{phrase: phrase, start: idx, end: idx + len(phrase)})
		}
	}

	for _, tok := range tokens {
		if strings.Contains(tok, " ") {
			locate(tok)
		}
	}
	for n := 2; n <= a.cfg.MaxPhraseLength && n <= len(tokens); n++ {
		for _, gram := range NGrams(tokens, n) {
			if a.ext.IsMeaningful(gram) {
				locate(strings.Join(gram, " "))
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].start < out[j].start
	})
	return out
}

// wordFallback scores a text by counting distinct fallback words and emoji.
// Very short texts rarely contain a qualifying multi-word phrase, and
// returning zero-confidence neutral for all of them would under-report
// sentiment on exactly the short, high-signal comments of social feeds.
func (a *Analyzer) wordFallback(cleaned string) (score, confidence float64) {
	pos, neg := a.lex.FallbackCounts(cleaned)
	total := pos + neg
	if total == 0 {
		return 0.0, 0.0
	}
	switch {
	case pos > neg:
		score = float64(pos) / float64(total)
	case neg > pos:
		score = -float64(neg) / float64(total)
	}
	return score, math.Min(1.0, float64(total)/10.0)
}

// AnalyzeCorpus runs AnalyzeText over every text and aggregates: a
// confidence-weighted overall score, the label distribution, and the
// recurrence counts of sentiment-flagged phrases. Malformed texts
// contribute neutral records; they never abort the batch.
func (a *Analyzer) AnalyzeCorpus(texts []string) CorpusResult {
	out := CorpusResult{
		Label:        Neutral,
		Distribution: map[Label]int{Positive: 0, Negative: 0, Neutral: 0},
		TopPhrases:   []PhraseCount{},
		Results:      make([]AnalysisResult, 0, len(texts)),
	}
	if len(texts) == 0 {
		return out
	}

	phraseFreqs := make(map[string]int)
	scores := make([]float64, 0, len(texts))
	confs := make([]float64, 0, len(texts))

	for _, text := range texts {
		r := a.AnalyzeText(text)
		out.Results = append(out.Results, r)
		out.Distribution[r.Label]++
		out.PhraseCount += len(r.Phrases)
		scores = append(scores, r.Score)
		confs = append(confs, r.Confidence)
		for _, m := range r.Phrases {
			phraseFreqs[m.Phrase]++
		}
	}

	out.TextCount = len(texts)
	if total := floats.Sum(confs); total > 0 {
		out.Score = floats.Dot(scores, confs) / total
		out.Confidence = total / float64(len(texts))
	}
	out.Label = LabelForScore(out.Score)
	out.TopPhrases = topCounts(phraseFreqs, 10)
	return out
}

// AnalyzeSentences segments a text and analyzes each sentence separately.
// Useful for longer posts where a single aggregate hides mixed sentiment.
func (a *Analyzer) AnalyzeSentences(text string) []AnalysisResult {
	sentences := Sentences(text)
	results := make([]AnalysisResult, len(sentences))
	for i, s := range sentences {
		results[i] = a.AnalyzeText(s)
	}
	return results
}
