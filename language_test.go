package phrasal

import "testing"

func TestScriptOf(t *testing.T) {
	tests := []struct {
		input    string
		expected Script
		desc     string
	}{
		{"hello world", ScriptLatin, "plain English"},
		{"مرحبا بالعالم", ScriptArabic, "plain Arabic"},
		{"", ScriptOther, "empty"},
		{"123 !!!", ScriptOther, "no letters"},
		{"ok خدمة ممتازة جدا", ScriptArabic, "mostly Arabic mixed text"},
		{"check out خدمة today please", ScriptLatin, "mostly Latin mixed text"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := ScriptOf(tt.input); got != tt.expected {
				t.Errorf("ScriptOf(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLibraryStopwords(t *testing.T) {
	words := libraryStopwords("en")
	if len(words) == 0 {
		t.Fatal("no English stopwords derived from the library")
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	if _, ok := seen["the"]; !ok {
		t.Error(`"the" missing from derived stopwords`)
	}
}
