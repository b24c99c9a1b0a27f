package features

import (
	"context"
	"regexp"
	"strings"
)

var stubTokenPattern = regexp.MustCompile(`\p{L}+|\p{N}+|[^\s\p{L}\p{N}]`)
var stubSentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

type stubSegmenter struct {
	err error
}

func (s stubSegmenter) Tokenize(_ context.Context, text string) ([]Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	return stubTokens(text), nil
}

func (s stubSegmenter) Segment(_ context.Context, text string) ([]Sentence, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []Sentence
	for _, raw := range stubSentencePattern.FindAllString(text, -1) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		out = append(out, Sentence{Text: raw, Tokens: stubTokens(raw)})
	}
	return out, nil
}

func stubTokens(text string) []Token {
	parts := stubTokenPattern.FindAllString(text, -1)
	out := make([]Token, len(parts))
	for i, p := range parts {
		out[i] = NewToken(p)
	}
	return out
}

// stubTagger tags known words from a table and everything else alphabetic as NN.
type stubTagger struct {
	tags map[string]string
	err  error
}

func (s stubTagger) Tag(_ context.Context, text string) ([]TaggedToken, error) {
	if s.err != nil {
		return nil, s.err
	}
	tokens := stubTokens(text)
	out := make([]TaggedToken, len(tokens))
	for i, t := range tokens {
		tag := "."
		if t.Alphabetic {
			tag = "NN"
			if v, ok := s.tags[t.Lower]; ok {
				tag = v
			}
		}
		out[i] = TaggedToken{Token: t, Tag: tag}
	}
	return out, nil
}

type stubSentiment struct {
	sentiment Sentiment
	compound  float64
	err       error
}

func (s stubSentiment) ScoreSentiment(context.Context, string) (Sentiment, error) {
	return s.sentiment, s.err
}

func (s stubSentiment) ScoreCompound(context.Context, string) (float64, error) {
	return s.compound, s.err
}

type stubReadability struct {
	flesch    float64
	fog       float64
	fleschErr error
	fogErr    error
}

func (s stubReadability) FleschReadingEase(context.Context, string) (float64, error) {
	return s.flesch, s.fleschErr
}

func (s stubReadability) GunningFog(context.Context, string) (float64, error) {
	return s.fog, s.fogErr
}

type stubEntities struct {
	entities []Entity
	err      error
}

func (s stubEntities) Entities(context.Context, string) ([]Entity, error) {
	return s.entities, s.err
}

var defaultStubTags = map[string]string{
	"i": "PRP", "you": "PRP", "is": "VBZ", "love": "VBP", "sat": "VBD", "the": "DT",
	"on": "IN", "fun": "JJ", "quickly": "RB", "happy": "JJ",
}

func stubToolkit() Toolkit {
	return Toolkit{
		Segmenter:   stubSegmenter{},
		Tagger:      stubTagger{tags: defaultStubTags},
		Sentiment:   stubSentiment{sentiment: Sentiment{Polarity: 0.25, Subjectivity: 0.5}, compound: 0.4},
		Readability: stubReadability{flesch: 72.5, fog: 8.1},
		Entities:    stubEntities{},
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(level, stage, message, detail string) {
	l.lines = append(l.lines, level+" "+stage+" "+message+" "+detail)
}
