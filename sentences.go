package phrasal

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
)

// Sentences splits a text into sentences using a Punkt-trained segmenter.
// Arabic text lacks trained data, so it falls back to splitting on
// terminal punctuation; short social-media posts are usually a single
// sentence either way.
func Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if ScriptOf(text) == ScriptArabic {
		return splitTerminal(text)
	}

	segmenterOnce.Do(func() {
		tokenizer, err := english.NewSentenceTokenizer(nil)
		if err == nil {
			segmenter = tokenizer
		}
	})
	if segmenter == nil {
		return splitTerminal(text)
	}

	var out []string
	for _, s := range segmenter.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func splitTerminal(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if t := strings.TrimSpace(b.String()); t != "" {
			out = append(out, t)
		}
		b.Reset()
	}
	for _, r := range text {
		b.WriteRune(r)
		switch r {
		case '.', '!', '?', '؟', '؛':
			flush()
		}
	}
	flush()
	return out
}
