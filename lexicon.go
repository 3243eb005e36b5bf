package phrasal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// A Lexicon is the immutable dictionary bundle consumed by the tokenizer
// and the scorer: stopwords, phrase sentiment tables, modifiers, the
// meaningless-phrase blocklist, and the word-level fallback sets.
//
// Construct a Lexicon once at startup and share it freely; it is never
// mutated afterwards.
type Lexicon struct {
	stopwords   map[string]struct{}
	positive    map[Language]map[string]float64
	negative    map[Language]map[string]float64
	context     map[string]float64
	modifiers   map[string]float64
	meaningless map[string]struct{}

	fallbackPositive []string
	fallbackNegative []string

	// Multi-word keys of all phrase tables, longest first. Used by the
	// tokenizer's preserve pass.
	preserve []string
}

// LexiconFile is the on-disk representation of lexicon data, loadable from
// YAML or JSON. All sections are optional; loaded entries merge over the
// defaults.
type LexiconFile struct {
	Languages map[string]LanguageLexicon `yaml:"languages" json:"languages"`
}

// LanguageLexicon holds the lexicon sections for one language key
// ("en" or "ar").
type LanguageLexicon struct {
	Stopwords        []string           `yaml:"stopwords" json:"stopwords,omitempty"`
	Positive         map[string]float64 `yaml:"positive" json:"positive,omitempty"`
	Negative         map[string]float64 `yaml:"negative" json:"negative,omitempty"`
	Context          map[string]float64 `yaml:"context" json:"context,omitempty"`
	Modifiers        map[string]float64 `yaml:"modifiers" json:"modifiers,omitempty"`
	Meaningless      []string           `yaml:"meaningless" json:"meaningless,omitempty"`
	FallbackPositive []string           `yaml:"fallback_positive" json:"fallback_positive,omitempty"`
	FallbackNegative []string           `yaml:"fallback_negative" json:"fallback_negative,omitempty"`
}

// NewLexicon builds a Lexicon from the built-in bilingual defaults, merging
// any external lexicon files (YAML or JSON) over them in order.
func NewLexicon(paths ...string) (*Lexicon, error) {
	l := baseLexicon()
	for _, path := range paths {
		file, err := readLexiconFile(path)
		if err != nil {
			return nil, err
		}
		l.merge(file)
	}
	l.finalize()
	return l, nil
}

// NewLexiconFromData builds a Lexicon from explicit data only, without the
// built-in defaults. Intended for tests and callers with their own curated
// dictionaries.
func NewLexiconFromData(file LexiconFile) *Lexicon {
	l := emptyLexicon()
	l.merge(file)
	l.finalize()
	return l
}

var (
	defaultLexiconOnce sync.Once
	defaultLexiconVal  *Lexicon
)

// DefaultLexicon returns the shared built-in Lexicon, augmented with
// library-derived English stopwords. It is constructed once per process.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		l := baseLexicon()
		for _, w := range libraryStopwords("en") {
			l.stopwords[w] = struct{}{}
		}
		l.finalize()
		defaultLexiconVal = l
	})
	return defaultLexiconVal
}

func emptyLexicon() *Lexicon {
	return &Lexicon{
		stopwords: make(map[string]struct{}),
		positive: map[Language]map[string]float64{
			English: {},
			Arabic:  {},
		},
		negative: map[Language]map[string]float64{
			English: {},
			Arabic:  {},
		},
		context:     make(map[string]float64),
		modifiers:   make(map[string]float64),
		meaningless: make(map[string]struct{}),
	}
}

func baseLexicon() *Lexicon {
	l := emptyLexicon()
	for _, w := range defaultEnglishStopwords {
		l.stopwords[w] = struct{}{}
	}
	for _, w := range defaultArabicStopwords {
		l.stopwords[w] = struct{}{}
	}
	for p, s := range defaultEnglishPositive {
		l.positive[English][p] = s
	}
	for p, s := range defaultEnglishNegative {
		l.negative[English][p] = s
	}
	for p, s := range defaultArabicPositive {
		l.positive[Arabic][p] = s
	}
	for p, s := range defaultArabicNegative {
		l.negative[Arabic][p] = s
	}
	for p, s := range defaultContextPhrases {
		l.context[p] = s
	}
	for w, f := range defaultModifiers {
		l.modifiers[w] = f
	}
	for _, p := range defaultMeaninglessPhrases {
		l.meaningless[p] = struct{}{}
	}
	l.fallbackPositive = append(l.fallbackPositive, defaultFallbackPositive...)
	l.fallbackNegative = append(l.fallbackNegative, defaultFallbackNegative...)
	return l
}

func readLexiconFile(path string) (LexiconFile, error) {
	var file LexiconFile
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("reading lexicon file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		err = fmt.Errorf("unsupported lexicon format %q", filepath.Ext(path))
	}
	if err != nil {
		return file, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}
	return file, nil
}

func (l *Lexicon) merge(file LexiconFile) {
	for key, data := range file.Languages {
		lang := Language(strings.ToLower(key))
		if lang != English && lang != Arabic {
			continue
		}
		for _, w := range data.Stopwords {
			l.stopwords[strings.ToLower(w)] = struct{}{}
		}
		for p, s := range data.Positive {
			l.positive[lang][strings.ToLower(p)] = clampScore(s)
		}
		for p, s := range data.Negative {
			l.negative[lang][strings.ToLower(p)] = clampScore(s)
		}
		for p, s := range data.Context {
			l.context[strings.ToLower(p)] = clampScore(s)
		}
		for w, f := range data.Modifiers {
			l.modifiers[strings.ToLower(w)] = f
		}
		for _, p := range data.Meaningless {
			l.meaningless[strings.ToLower(p)] = struct{}{}
		}
		for _, w := range data.FallbackPositive {
			l.fallbackPositive = append(l.fallbackPositive, strings.ToLower(w))
		}
		for _, w := range data.FallbackNegative {
			l.fallbackNegative = append(l.fallbackNegative, strings.ToLower(w))
		}
	}
}

// finalize computes the preserve list: every multi-word phrase key across
// the sentiment tables, ordered longest first so that "very good" is never
// shadowed by a shorter overlapping entry. Ties break lexicographically for
// determinism.
func (l *Lexicon) finalize() {
	seen := make(map[string]struct{})
	add := func(p string) {
		if strings.Contains(p, " ") {
			seen[p] = struct{}{}
		}
	}
	for _, table := range l.positive {
		for p := range table {
			add(p)
		}
	}
	for _, table := range l.negative {
		for p := range table {
			add(p)
		}
	}
	for p := range l.context {
		add(p)
	}

	l.preserve = make([]string, 0, len(seen))
	for p := range seen {
		l.preserve = append(l.preserve, p)
	}
	sort.Slice(l.preserve, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(l.preserve[i]), utf8.RuneCountInString(l.preserve[j])
		if li != lj {
			return li > lj
		}
		return l.preserve[i] < l.preserve[j]
	})
}

// IsStopword reports whether the lowercased token is in the combined
// Arabic and English stopword set.
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[strings.ToLower(token)]
	return ok
}

// IsMeaningless reports whether the joined phrase is blocklisted.
func (l *Lexicon) IsMeaningless(phrase string) bool {
	_, ok := l.meaningless[phrase]
	return ok
}

// Score returns the lexicon sentiment score for a phrase under the given
// language scope. The context-dependent table takes precedence; within a
// scope, positive tables are probed before negative ones, and English
// before Arabic when the scope is Auto. Returns 0 for a lexicon miss.
func (l *Lexicon) Score(phrase string, lang Language) float64 {
	p := strings.ToLower(strings.TrimSpace(phrase))

	if s, ok := l.context[p]; ok {
		return s
	}
	if lang == English || lang == Auto {
		if s, ok := l.positive[English][p]; ok {
			return s
		}
		if s, ok := l.negative[English][p]; ok {
			return s
		}
	}
	if lang == Arabic || lang == Auto {
		if s, ok := l.positive[Arabic][p]; ok {
			return s
		}
		if s, ok := l.negative[Arabic][p]; ok {
			return s
		}
	}
	return 0.0
}

// ModifierWeight returns the signed multiplicative weight of a modifier
// word, or 0 when the word is not a modifier.
func (l *Lexicon) ModifierWeight(word string) float64 {
	return l.modifiers[strings.ToLower(word)]
}

// PreservePhrases returns the multi-word sentiment phrases the tokenizer
// must keep intact, longest first. The returned slice is shared and must
// not be modified.
func (l *Lexicon) PreservePhrases() []string {
	return l.preserve
}

// FallbackCounts counts distinct positive and negative fallback entries
// (words, emoji, emoticons) present in the lowercased text.
func (l *Lexicon) FallbackCounts(text string) (pos, neg int) {
	lower := strings.ToLower(text)
	for _, w := range l.fallbackPositive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range l.fallbackNegative {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	return pos, neg
}

// Size returns the number of phrase entries across all sentiment tables.
func (l *Lexicon) Size() int {
	n := len(l.context)
	for _, table := range l.positive {
		n += len(table)
	}
	for _, table := range l.negative {
		n += len(table)
	}
	return n
}
