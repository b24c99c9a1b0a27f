package nlp

import (
	"context"
	"errors"
	"strings"

	"github.com/jdkato/prose/summarize"
)

var ErrNoWords = errors.New("readability: text has no words")

// Readability scores text with the Flesch reading ease and Gunning fog indices
// of prose's summarize package. Scores are unbounded.
type Readability struct{}

func assess(ctx context.Context, text string) (*summarize.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoWords
	}
	doc := summarize.NewDocument(text)
	if doc.NumWords == 0 || doc.NumSentences == 0 {
		return nil, ErrNoWords
	}
	return doc, nil
}

func (Readability) FleschReadingEase(ctx context.Context, text string) (float64, error) {
	doc, err := assess(ctx, text)
	if err != nil {
		return 0, err
	}
	return doc.FleschReadingEase(), nil
}

func (Readability) GunningFog(ctx context.Context, text string) (float64, error) {
	doc, err := assess(ctx, text)
	if err != nil {
		return 0, err
	}
	return doc.GunningFog(), nil
}
