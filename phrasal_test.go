package phrasal

import "testing"

func TestPackageLevelAPI(t *testing.T) {
	if score := PhraseScore("thank you", English); score != 1.0 {
		t.Errorf("PhraseScore = %g, want 1.0", score)
	}
	if label := PhraseLabel("terrible service", Auto); label != Negative {
		t.Errorf("PhraseLabel = %s, want %s", label, Negative)
	}

	r := AnalyzeText("thank you so much, amazing work!", Auto)
	if r.Label != Positive || r.WordFallback {
		t.Errorf("AnalyzeText = %+v, want positive phrase-based result", r)
	}

	c := AnalyzeCorpus([]string{"well done", "خدمة رهيبة"}, Auto)
	if c.TextCount != 2 {
		t.Errorf("TextCount = %d, want 2", c.TextCount)
	}
	if c.Distribution[Positive] != 1 || c.Distribution[Negative] != 1 {
		t.Errorf("Distribution = %v, want one of each", c.Distribution)
	}
}

func TestExtractTopPhrases(t *testing.T) {
	texts := make([]string, 10)
	for i := range texts {
		texts[i] = "good service good service"
	}
	got := ExtractTopPhrases(texts, 5)
	if len(got) != 1 {
		t.Fatalf("got %v, want exactly one validated phrase", got)
	}
	if got[0].Phrase != "good service" || got[0].Count != 20 {
		t.Errorf("top phrase = %+v, want {good service 20}", got[0])
	}
}

func TestDefaultAnalyzerReuse(t *testing.T) {
	a, b := defaultAnalyzer(Auto), defaultAnalyzer(Auto)
	if a != b {
		t.Error("default analyzer not shared per language scope")
	}
	if defaultAnalyzer(Arabic) == a {
		t.Error("language scopes must not share an analyzer")
	}
}
