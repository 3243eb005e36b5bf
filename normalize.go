package phrasal

import (
	"regexp"
	"strings"
)

// Text normalization for short social-media posts and comments. Cleaning is
// best-effort: malformed input degrades to whatever can be salvaged, it
// never produces an error.

var (
	// Combining marks stripped from Arabic text: tashdid, fatha, tanwin
	// fath, damma, tanwin damm, kasra, tanwin kasr, sukun, plus the tatwil
	// (kashida) elongation character.
	arabicDiacriticsRE = regexp.MustCompile("[ً-ْـ]")

	urlRE     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionRE = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	hashtagRE = regexp.MustCompile(`#[^\s#]+`)

	exclaimRunRE  = regexp.MustCompile(`!{2,}`)
	questionRunRE = regexp.MustCompile(`\?{2,}`)
	arQuestionRE  = regexp.MustCompile(`؟{2,}`)
	ellipsisRunRE = regexp.MustCompile(`\.{2,}`)

	arabicDigits = strings.NewReplacer(
		"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
		"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	)
)

// A Normalizer cleans raw text before tokenization.
type Normalizer struct {
	keepHashtagWords bool
}

// NormalizerOpt configures a Normalizer.
type NormalizerOpt func(*Normalizer)

// KeepHashtagWords controls whether "#word" contributes "word" to the
// cleaned text (the default) or is removed entirely.
func KeepHashtagWords(keep bool) NormalizerOpt {
	return func(n *Normalizer) {
		n.keepHashtagWords = keep
	}
}

// NewNormalizer creates a Normalizer with the given options.
func NewNormalizer(opts ...NormalizerOpt) *Normalizer {
	n := &Normalizer{keepHashtagWords: true}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Clean normalizes text: strips Arabic diacritics, URLs, and @mentions,
// handles hashtag markers, normalizes Arabic-Indic digits, collapses
// punctuation runs and whitespace, and trims. Empty input yields "".
func (n *Normalizer) Clean(text string) string {
	if text == "" {
		return ""
	}

	text = arabicDiacriticsRE.ReplaceAllString(text, "")
	text = urlRE.ReplaceAllString(text, "")
	text = mentionRE.ReplaceAllString(text, "")

	if n.keepHashtagWords {
		text = strings.ReplaceAll(text, "#", "")
	} else {
		text = hashtagRE.ReplaceAllString(text, "")
	}

	text = arabicDigits.Replace(text)

	text = exclaimRunRE.ReplaceAllString(text, "!")
	text = questionRunRE.ReplaceAllString(text, "?")
	text = arQuestionRE.ReplaceAllString(text, "؟")
	text = ellipsisRunRE.ReplaceAllString(text, ".")

	return strings.Join(strings.Fields(text), " ")
}

// Clean normalizes text with the default Normalizer settings.
func Clean(text string) string {
	return defaultNormalizer.Clean(text)
}

var defaultNormalizer = NewNormalizer()
