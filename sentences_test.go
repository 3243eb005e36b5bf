package phrasal

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
		desc     string
	}{
		{"", nil, "empty input"},
		{"   ", nil, "whitespace only"},
		{"Just one sentence", []string{"Just one sentence"}, "no terminal punctuation"},
		{
			"Great product. Fast shipping!",
			[]string{"Great product.", "Fast shipping!"},
			"two English sentences",
		},
		{
			"الخدمة ممتازة. التوصيل سريع جدا!",
			[]string{"الخدمة ممتازة.", "التوصيل سريع جدا!"},
			"Arabic period and exclamation",
		},
		{
			"هل المنتج جيد؟ نعم بالتأكيد",
			[]string{"هل المنتج جيد؟", "نعم بالتأكيد"},
			"Arabic question mark",
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Sentences(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Sentences(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitTerminal(t *testing.T) {
	got := splitTerminal("one. two! three? four")
	expected := []string{"one.", "two!", "three?", "four"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("splitTerminal = %q, want %q", got, expected)
	}
}
