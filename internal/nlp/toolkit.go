package nlp

import (
	"context"

	"stylometer/internal/features"
	"stylometer/internal/lexicon"
)

// Recognizers merges the entities of several recognizers in order.
type Recognizers []features.EntityRecognizer

func (r Recognizers) Entities(ctx context.Context, text string) ([]features.Entity, error) {
	var out []features.Entity
	for _, rec := range r {
		ents, err := rec.Entities(ctx, text)
		if err != nil {
			return nil, err
		}
		out = append(out, ents...)
	}
	return out, nil
}

// NewToolkit wires the default English capabilities: prose for tokens,
// sentences, tags and people, the lexicon for sentiment, and regex date
// markers.
func NewToolkit(lex *lexicon.Lexicon) features.Toolkit {
	p := Prose{}
	return features.Toolkit{
		Segmenter:   p,
		Tagger:      p,
		Sentiment:   NewLexiconSentiment(lex),
		Readability: Readability{},
		Entities:    Recognizers{p, DateRecognizer{}},
	}
}
