package phrasal

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
)

// ScriptOf reports the dominant script of a text: Arabic if any Arabic
// letters outnumber Latin ones, Latin for the reverse, ScriptOther when
// neither appears. Exposed for callers that want to pick a single lexicon
// scope up front instead of relying on the Auto probe order.
func ScriptOf(text string) Script {
	var arabic, latin int
	for _, r := range text {
		switch {
		case r >= 0x0621 && r <= 0x064A:
			arabic++
		case unicode.IsLetter(r) && r < 0x0250:
			latin++
		}
	}
	switch {
	case arabic == 0 && latin == 0:
		return ScriptOther
	case arabic >= latin:
		return ScriptArabic
	default:
		return ScriptLatin
	}
}

// libraryStopwords derives a stopword list for an ISO 639-1 language code
// from the bbalet/stopwords corpus. The library does not export its word
// lists, so candidate words are probed individually: a word the library
// removes is a stopword.
func libraryStopwords(langCode string) []string {
	var out []string
	for _, word := range stopwordProbeWords {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, langCode, false))
		if cleaned == "" || cleaned != word {
			out = append(out, word)
		}
	}
	return out
}

// Common function words worth probing against the stopword library. The
// probe result is merged into the default English stopword set.
var stopwordProbeWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "as", "at", "back", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"could", "did", "do", "does", "doing", "down", "during", "each", "even",
	"few", "for", "from", "further", "get", "go", "had", "has", "have",
	"having", "he", "her", "here", "hers", "herself", "him", "himself",
	"his", "how", "i", "if", "in", "into", "is", "it", "its", "itself",
	"just", "like", "made", "make", "many", "may", "me", "might", "more",
	"most", "much", "must", "my", "myself", "never", "new", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other", "our",
	"ours", "ourselves", "out", "over", "own", "same", "she", "should",
	"so", "some", "such", "than", "that", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "until", "up", "was", "we", "were",
	"what", "when", "where", "which", "while", "who", "whom", "why", "will",
	"with", "would", "you", "your", "yours", "yourself", "yourselves",
}
