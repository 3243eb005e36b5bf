package phrasal

import "math"

// PMI computes the pointwise mutual information of a phrase against the
// single-token frequency table of the same corpus:
//
//	PMI = log2( P(phrase) / Π P(token_i) )
//
// where P(phrase) = phraseFreq / totalWords and each P(token_i) comes from
// wordFreqs. High PMI means the tokens co-occur far more often than their
// individual frequencies predict.
//
// Returns exactly 0.0 for phrases shorter than two tokens, a zero phrase
// frequency, a zero frequency for any constituent token, or an empty
// corpus. These guards keep the computation free of log(0) and division by
// zero on sparse corpora.
func PMI(phraseTokens []string, phraseFreq int, wordFreqs map[string]int, totalWords int) float64 {
	if len(phraseTokens) < 2 || phraseFreq == 0 || totalWords == 0 {
		return 0.0
	}

	total := float64(totalWords)
	joint := float64(phraseFreq) / total

	independent := 1.0
	for _, tok := range phraseTokens {
		freq := wordFreqs[tok]
		if freq == 0 {
			return 0.0
		}
		independent *= float64(freq) / total
	}
	if independent == 0 {
		return 0.0
	}

	return math.Log2(joint / independent)
}
