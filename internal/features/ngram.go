package features

import "strings"

type ngramStats struct {
	bigram  float64
	trigram float64
}

func computeNgrams(words []string) ngramStats {
	return ngramStats{
		bigram:  ngramUniqueness(words, 2),
		trigram: ngramUniqueness(words, 3),
	}
}

// ngramUniqueness is distinct n-token windows over total windows, sliding with
// stride 1. Fewer than n tokens yields 0.
func ngramUniqueness(words []string, n int) float64 {
	if n <= 0 || len(words) < n {
		return 0
	}
	total := len(words) - n + 1
	seen := make(map[string]struct{}, total)
	for i := 0; i+n <= len(words); i++ {
		// Tokens are alphabetic, so NUL cannot collide with token content.
		seen[strings.Join(words[i:i+n], "\x00")] = struct{}{}
	}
	return float64(len(seen)) / float64(total)
}
