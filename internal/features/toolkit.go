package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

type Token struct {
	Text       string
	Lower      string
	Alphabetic bool
}

// NewToken derives the lower-cased form and the alphabetic flag: a token is
// alphabetic when it is non-empty and every rune is a letter.
func NewToken(text string) Token {
	return Token{
		Text:       text,
		Lower:      strings.ToLower(text),
		Alphabetic: isAlphabetic(text),
	}
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

type Sentence struct {
	Text   string
	Tokens []Token
}

type TaggedToken struct {
	Token
	Tag string
}

const (
	LabelPerson = "PERSON"
	LabelDate   = "DATE"
)

type Entity struct {
	Text  string
	Label string
}

type Sentiment struct {
	Polarity     float64
	Subjectivity float64
}

type Segmenter interface {
	Segment(ctx context.Context, text string) ([]Sentence, error)
	Tokenize(ctx context.Context, text string) ([]Token, error)
}

type Tagger interface {
	Tag(ctx context.Context, text string) ([]TaggedToken, error)
}

type SentimentAnalyzer interface {
	ScoreSentiment(ctx context.Context, text string) (Sentiment, error)
	ScoreCompound(ctx context.Context, text string) (float64, error)
}

type ReadabilityScorer interface {
	FleschReadingEase(ctx context.Context, text string) (float64, error)
	GunningFog(ctx context.Context, text string) (float64, error)
}

type EntityRecognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}

// Toolkit is the set of NLP capabilities the extractor depends on. Every
// member must be safe for concurrent use when the extractor runs in parallel.
type Toolkit struct {
	Segmenter   Segmenter
	Tagger      Tagger
	Sentiment   SentimentAnalyzer
	Readability ReadabilityScorer
	Entities    EntityRecognizer
}

func (t Toolkit) validate() error {
	missing := []string{}
	if t.Segmenter == nil {
		missing = append(missing, CapabilitySegment)
	}
	if t.Tagger == nil {
		missing = append(missing, CapabilityTag)
	}
	if t.Sentiment == nil {
		missing = append(missing, CapabilitySentiment)
	}
	if t.Entities == nil {
		missing = append(missing, CapabilityEntities)
	}
	if len(missing) > 0 {
		return &CapabilityError{Capability: strings.Join(missing, ","), Err: errors.New("not configured")}
	}
	return nil
}

const (
	CapabilitySegment    = "segment"
	CapabilityTokenize   = "tokenize"
	CapabilityTag        = "tag"
	CapabilitySentiment  = "sentiment"
	CapabilityCompound   = "compound"
	CapabilityEntities   = "entities"
	CapabilityFlesch     = "flesch"
	CapabilityGunningFog = "gunning_fog"
)

// ErrCapability matches every CapabilityError via errors.Is.
var ErrCapability = errors.New("nlp capability failed")

type CapabilityError struct {
	Capability string
	Err        error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCapability, e.Capability, e.Err)
}

func (e *CapabilityError) Unwrap() []error {
	return []error{ErrCapability, e.Err}
}
