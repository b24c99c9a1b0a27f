package nlp

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"

	"stylometer/internal/features"
	"stylometer/internal/lexicon"
)

const (
	negationWindow  = 3
	modifierWindow  = 2
	negationDamping = 0.5
)

var sentimentTokenPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|[.,;:!?]`)

// LexiconSentiment scores polarity and subjectivity from the sentiment section
// of a lexicon and delegates the compound score to VADER. Both halves are
// read-only after construction, so one value serves concurrent callers.
type LexiconSentiment struct {
	lex   *lexicon.Lexicon
	vader *govader.SentimentIntensityAnalyzer
}

func NewLexiconSentiment(lex *lexicon.Lexicon) *LexiconSentiment {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &LexiconSentiment{lex: lex, vader: govader.NewSentimentIntensityAnalyzer()}
}

type sentimentHit struct {
	entry      lexicon.SentimentEntry
	negated    bool
	multiplier float64
}

// ScoreSentiment averages the polarity and subjectivity of every sentiment word.
// A negated word has its polarity reversed and halved; an intensifier within
// two words scales both polarity and subjectivity. Text with no sentiment
// words scores 0 on both axes.
func (s *LexiconSentiment) ScoreSentiment(ctx context.Context, text string) (features.Sentiment, error) {
	if err := ctx.Err(); err != nil {
		return features.Sentiment{}, err
	}
	hits := s.hits(text)
	if len(hits) == 0 {
		return features.Sentiment{}, nil
	}
	var polarity, subjectivity float64
	for _, h := range hits {
		p := h.entry.Polarity * h.multiplier
		if h.negated {
			p = -p * negationDamping
		}
		polarity += p
		subjectivity += h.entry.Subjectivity * h.multiplier
	}
	n := float64(len(hits))
	return features.Sentiment{
		Polarity:     clamp(polarity/n, -1, 1),
		Subjectivity: clamp(subjectivity/n, 0, 1),
	}, nil
}

// ScoreCompound returns the VADER compound score of text, in [-1, 1].
func (s *LexiconSentiment) ScoreCompound(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return clamp(s.vader.PolarityScores(text).Compound, -1, 1), nil
}

func (s *LexiconSentiment) hits(text string) []sentimentHit {
	tokens := sentimentTokenPattern.FindAllString(strings.ToLower(text), -1)
	var out []sentimentHit
	for i, tok := range tokens {
		entry, ok := s.lex.Sentiment[normalizeApostrophe(tok)]
		if !ok {
			continue
		}
		out = append(out, sentimentHit{
			entry:      entry,
			negated:    s.negated(tokens, i),
			multiplier: s.modifier(tokens, i),
		})
	}
	return out
}

// negated reports whether a negation occurs within the window before i with no
// clause boundary in between.
func (s *LexiconSentiment) negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		tok := normalizeApostrophe(tokens[j])
		if isClauseBoundary(tok) {
			return false
		}
		if s.lex.Negations.Has(tok) || strings.HasSuffix(tok, "n't") {
			return true
		}
	}
	return false
}

func (s *LexiconSentiment) modifier(tokens []string, i int) float64 {
	for j := i - 1; j >= 0 && j >= i-modifierWindow; j-- {
		tok := tokens[j]
		if isClauseBoundary(tok) {
			break
		}
		if m, ok := s.lex.Intensifiers[tok]; ok {
			return m
		}
	}
	return 1
}

func isClauseBoundary(tok string) bool {
	switch tok {
	case ".", ",", ";", ":", "!", "?", "but", "however":
		return true
	}
	return false
}

func normalizeApostrophe(tok string) string {
	return strings.ReplaceAll(tok, "’", "'")
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
