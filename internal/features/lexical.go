package features

import "unicode/utf8"

const complexWordMinLen = 7

type lexicalStats struct {
	wordCount        int
	charCount        int
	uniqueWordCount  int
	complexWordCount int
	avgWordLength    float64
	ttr              float64
	hapaxRate        float64
}

func alphabeticTokens(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Alphabetic {
			out = append(out, t)
		}
	}
	return out
}

func lowered(words []Token) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Lower
	}
	return out
}

// computeLexical expects alphabetic tokens only. Lengths are measured in runes
// on the surface form; types and frequencies use the lower-cased form.
func computeLexical(words []Token) lexicalStats {
	s := lexicalStats{wordCount: len(words)}
	freqs := make(map[string]int, len(words))
	for _, w := range words {
		n := utf8.RuneCountInString(w.Text)
		s.charCount += n
		if n >= complexWordMinLen {
			s.complexWordCount++
		}
		freqs[w.Lower]++
	}
	s.uniqueWordCount = len(freqs)
	hapax := 0
	for _, f := range freqs {
		if f == 1 {
			hapax++
		}
	}
	s.avgWordLength = ratio(s.charCount, s.wordCount)
	s.ttr = ratio(s.uniqueWordCount, s.wordCount)
	s.hapaxRate = ratio(hapax, s.wordCount)
	return s
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}
