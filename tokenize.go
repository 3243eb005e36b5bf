package phrasal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word pattern: Arabic letters and Arabic-Indic digits (U+0621–U+064A,
// U+0660–U+0669) plus ASCII alphanumerics. Placeholder tokens are pure
// ASCII and match as ordinary words.
var wordRE = regexp.MustCompile("[ء-ي٠-٩A-Za-z0-9]+")

// A Tokenizer turns raw text into a filtered token stream in which known
// multi-word sentiment phrases survive as single logical units.
//
// Tokenization is a four-pass pipeline: known sentiment phrases are
// replaced with placeholder tokens, the text is cleaned and split on the
// word pattern, stopwords and short or numeric tokens are dropped, and
// placeholders are restored to their original phrases.
type Tokenizer struct {
	lex           *Lexicon
	norm          *Normalizer
	minTokenRunes int
}

// TokenizerOpt configures a Tokenizer.
type TokenizerOpt func(*Tokenizer)

// UsingNormalizer sets the Normalizer used by the cleaning pass.
func UsingNormalizer(n *Normalizer) TokenizerOpt {
	return func(t *Tokenizer) {
		t.norm = n
	}
}

// MinTokenLength sets the minimum rune count below which tokens are
// filtered out. The default is 3.
func MinTokenLength(n int) TokenizerOpt {
	return func(t *Tokenizer) {
		t.minTokenRunes = n
	}
}

// NewTokenizer creates a Tokenizer backed by the given Lexicon.
func NewTokenizer(lex *Lexicon, opts ...TokenizerOpt) *Tokenizer {
	t := &Tokenizer{
		lex:           lex,
		norm:          NewNormalizer(),
		minTokenRunes: 3,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text into filtered tokens. Multi-word sentiment phrases
// from the lexicon appear in the result as single space-joined strings.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	preserved, placeholders := t.preserve(lower)
	cleaned := t.norm.Clean(preserved)

	var tokens []string
	for _, tok := range wordRE.FindAllString(cleaned, -1) {
		if _, ok := placeholders[tok]; ok {
			tokens = append(tokens, tok)
			continue
		}
		if t.lex.IsStopword(tok) {
			continue
		}
		if utf8.RuneCountInString(tok) < t.minTokenRunes {
			continue
		}
		if isNumeric(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	if len(placeholders) == 0 {
		return tokens
	}
	restored := make([]string, len(tokens))
	for i, tok := range tokens {
		if phrase, ok := placeholders[tok]; ok {
			restored[i] = phrase
		} else {
			restored[i] = tok
		}
	}
	return restored
}

// preserve scans the lowercased text once, left to right, replacing every
// lexicon phrase occurrence with a placeholder token. Candidate phrases are
// tried longest first at each position so overlapping entries cannot shadow
// a longer match. Placeholders are numbered per invocation; they are never
// reused across calls.
func (t *Tokenizer) preserve(text string) (string, map[string]string) {
	phrases := t.lex.PreservePhrases()
	if len(phrases) == 0 {
		return text, nil
	}

	var b strings.Builder
	placeholders := make(map[string]string)
	next := 0

	i := 0
	for i < len(text) {
		var matched string
		if wordBoundaryBefore(text, i) {
			for _, p := range phrases {
				if strings.HasPrefix(text[i:], p) && wordBoundaryAfter(text, i+len(p)) {
					matched = p
					break
				}
			}
		}
		if matched != "" {
			ph := fmt.Sprintf("xphrx%dx", next)
			next++
			placeholders[ph] = matched
			b.WriteString(ph)
			i += len(matched)
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String(), placeholders
}

func wordBoundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func wordBoundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
