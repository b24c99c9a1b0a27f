package features

import (
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"

	"stylometer/internal/lexicon"
)

var contractionPattern = regexp.MustCompile(`\b\p{L}+['’](?:` + strings.Join(lexicon.ContractionSuffixes, "|") + `)\b`)

type posClass int

const (
	posOther posClass = iota
	posNoun
	posVerb
	posAdj
	posAdv
)

// classifyTag maps Penn Treebank and Universal Dependencies tags onto the four
// open word classes the ratios are defined over.
func classifyTag(tag string) posClass {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	switch {
	case tag == "NOUN" || tag == "PROPN" || strings.HasPrefix(tag, "NN"):
		return posNoun
	case tag == "VERB" || strings.HasPrefix(tag, "VB"):
		return posVerb
	case tag == "ADJ" || strings.HasPrefix(tag, "JJ"):
		return posAdj
	case tag == "ADV" || tag == "RB" || tag == "RBR" || tag == "RBS":
		return posAdv
	default:
		return posOther
	}
}

type syntacticStats struct {
	sentenceCount    int
	sentenceLengths  []float64
	avgSentenceLen   float64
	varSentenceLen   float64
	punctuationCount int
	stopwordCount    int
	questionCount    int
	exclamationCount int
	contractionCount int
	nounRatio        float64
	verbRatio        float64
	adjRatio         float64
	advRatio         float64
	syntaxVariety    float64
}

func computeSyntactic(text string, sentences []Sentence, words []Token, tagged []TaggedToken, lex *lexicon.Lexicon) syntacticStats {
	s := syntacticStats{sentenceCount: len(sentences)}

	if len(sentences) > 0 {
		s.sentenceLengths = make([]float64, len(sentences))
		for i, sent := range sentences {
			n := 0
			for _, t := range sent.Tokens {
				if t.Alphabetic {
					n++
				}
			}
			s.sentenceLengths[i] = float64(n)
		}
		s.avgSentenceLen, s.varSentenceLen = stat.PopMeanVariance(s.sentenceLengths, nil)
	}

	for _, r := range text {
		if lexicon.IsPunctuation(r) {
			s.punctuationCount++
		}
	}
	s.questionCount = strings.Count(text, "?")
	s.exclamationCount = strings.Count(text, "!")
	s.contractionCount = len(contractionPattern.FindAllStringIndex(strings.ToLower(text), -1))

	for _, w := range words {
		if lex.Stopwords.Has(w.Lower) {
			s.stopwordCount++
		}
	}

	// The denominator is the tagger's own alphabetic judgment, which can differ
	// from the tokenizer's count used by the lexical ratios.
	taggedWords := 0
	counts := map[posClass]int{}
	tags := map[string]struct{}{}
	for _, t := range tagged {
		if !t.Alphabetic {
			continue
		}
		taggedWords++
		counts[classifyTag(t.Tag)]++
		tags[t.Tag] = struct{}{}
	}
	s.nounRatio = ratio(counts[posNoun], taggedWords)
	s.verbRatio = ratio(counts[posVerb], taggedWords)
	s.adjRatio = ratio(counts[posAdj], taggedWords)
	s.advRatio = ratio(counts[posAdv], taggedWords)
	s.syntaxVariety = ratio(len(tags), taggedWords)
	return s
}
