package phrasal

// Language selects which lexicon scopes are probed during scoring.
//
// Auto probes English first, then Arabic. The probe order is part of the
// contract: when the same phrase appears in both scopes, the English entry
// wins deterministically.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	Auto    Language = "auto"
)

// Label is a ternary sentiment classification.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// LabelForScore maps a sentiment score to its label. The same thresholds
// apply at phrase, document, and corpus level.
func LabelForScore(score float64) Label {
	switch {
	case score > 0.5:
		return Positive
	case score < -0.5:
		return Negative
	default:
		return Neutral
	}
}

// Script identifies the dominant writing system of a token or text.
type Script int

const (
	ScriptOther Script = iota
	ScriptLatin
	ScriptArabic
)

// A PhraseMatch records one scored phrase found in a text, with its
// character offsets in the cleaned text.
type PhraseMatch struct {
	Phrase     string  // the phrase as it appears in the token stream
	Score      float64 // sentiment score in [-1, 1]
	Label      Label
	Confidence float64 // in [0, 1]
	Start      int     // byte offset in the cleaned text
	End        int
}

// An AnalysisResult holds the sentiment analysis of a single text.
type AnalysisResult struct {
	Score        float64
	Label        Label
	Confidence   float64
	Phrases      []PhraseMatch
	WordFallback bool // true when word/emoji counting was used instead of phrases
}

// A PhraseCount pairs a phrase with its corpus frequency. Slices of
// PhraseCount are ordered by descending count.
type PhraseCount struct {
	Phrase string
	Count  int
}

// A CorpusResult aggregates AnalysisResults over a set of texts.
type CorpusResult struct {
	Score        float64
	Label        Label
	Confidence   float64
	TextCount    int
	PhraseCount  int
	Distribution map[Label]int
	TopPhrases   []PhraseCount // sentiment-flagged phrase recurrence, not PMI collocations
	Results      []AnalysisResult
}

// CorpusPhrases holds the raw accumulation of a corpus collocation pass.
type CorpusPhrases struct {
	Phrases    map[string]int     // validated phrases (frequency and PMI gated)
	Raw        map[string]int     // all meaningful phrases before validation
	WordFreqs  map[string]int     // single-token frequencies
	TotalWords int                // total filtered tokens across the corpus
	PMIScores  map[string]float64 // PMI per phrase meeting the frequency gate
}

// PhraseSentiment is the scored form of a single phrase, independent of any
// surrounding text.
type PhraseSentiment struct {
	Score      float64
	Label      Label
	Confidence float64
}

func clampScore(s float64) float64 {
	if s > 1.0 {
		return 1.0
	}
	if s < -1.0 {
		return -1.0
	}
	return s
}

func clampConfidence(c float64) float64 {
	if c > 1.0 {
		return 1.0
	}
	if c < 0.0 {
		return 0.0
	}
	return c
}
