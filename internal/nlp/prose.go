package nlp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"

	"stylometer/internal/features"
	"stylometer/internal/lexicon"
)

// Prose adapts the prose pipeline to the segmenter, tagger and PERSON
// recognizer capabilities. Each call builds its own document over a shared,
// read-only model, so a single value can serve concurrent callers.
type Prose struct{}

// sharedModel loads the tagger and entity classifier on first use.
var sharedModel = sync.OnceValue(func() *prose.Model {
	return prose.ModelFromData("en-v2.0.0")
})

// abbreviations end in a period without ending the sentence.
var abbreviations = lexicon.NewSet(
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt", "rev", "hon",
	"gen", "col", "capt", "lt", "sgt", "gov", "sen", "rep", "vs",
	"e.g", "i.e", "inc", "ltd", "corp", "fig", "approx",
)

// cliticTags are the Penn tags of clitics split off a fused token.
var cliticTags = map[string]string{
	"n't": "RB",
	"'d":  "MD",
	"'ll": "MD",
	"'re": "VBP",
	"'ve": "VBP",
	"'s":  "POS",
}

func newDocument(text string, opts ...prose.DocOpt) (*prose.Document, error) {
	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}
	return doc, nil
}

func (Prose) Tokenize(ctx context.Context, text string) ([]features.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return tokenize(text)
}

func tokenize(text string) ([]features.Token, error) {
	doc, err := newDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	var out []features.Token
	for _, t := range doc.Tokens() {
		for _, part := range splitClitic(t.Text) {
			out = append(out, features.NewToken(part))
		}
	}
	return out, nil
}

// splitClitic splits a contraction the tokenizer left fused ("I'd", "we've")
// into its head and clitic, the way "don't" becomes "do" + "n't". Tokens that
// are already a bare clitic come back unchanged.
func splitClitic(tok string) []string {
	norm := strings.ReplaceAll(tok, "’", "'")
	i := strings.LastIndexByte(norm, '\'')
	if i <= 0 || i == len(norm)-1 {
		return []string{tok}
	}
	head, suffix := norm[:i], strings.ToLower(norm[i+1:])
	matched := false
	for _, s := range lexicon.ContractionSuffixes {
		if suffix == s {
			matched = true
			break
		}
	}
	if !matched {
		return []string{tok}
	}
	if suffix == "t" {
		if len(head) < 2 || !strings.HasSuffix(strings.ToLower(head), "n") {
			return []string{tok}
		}
		return []string{head[:len(head)-1], head[len(head)-1:] + "'" + norm[i+1:]}
	}
	return []string{head, "'" + norm[i+1:]}
}

func (Prose) Segment(ctx context.Context, text string) ([]features.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := newDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	texts := mergeAbbreviations(doc.Sentences())
	out := make([]features.Sentence, 0, len(texts))
	for _, s := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tokens, err := tokenize(s)
		if err != nil {
			return nil, err
		}
		out = append(out, features.Sentence{Text: s, Tokens: tokens})
	}
	return out, nil
}

// mergeAbbreviations joins a sentence that ends in a known abbreviation with
// the one that follows it.
func mergeAbbreviations(sentences []prose.Sentence) []string {
	out := make([]string, 0, len(sentences))
	pending := ""
	for _, s := range sentences {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if pending != "" {
			text = pending + " " + text
			pending = ""
		}
		if endsWithAbbreviation(text) {
			pending = text
			continue
		}
		out = append(out, text)
	}
	if pending != "" {
		out = append(out, pending)
	}
	return out
}

func endsWithAbbreviation(sentence string) bool {
	if !strings.HasSuffix(sentence, ".") {
		return false
	}
	fields := strings.Fields(sentence)
	last := strings.ToLower(strings.TrimSuffix(fields[len(fields)-1], "."))
	last = strings.TrimLeft(last, `("'[`)
	return abbreviations.Has(last)
}

// Tag returns Penn Treebank tags for every token of text. A fused contraction
// keeps its tag on the head; the clitic gets the tag of its usual reading.
func (Prose) Tag(ctx context.Context, text string) ([]features.TaggedToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := newDocument(text,
		prose.UsingModel(sharedModel()),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	var out []features.TaggedToken
	for _, t := range doc.Tokens() {
		parts := splitClitic(t.Text)
		out = append(out, features.TaggedToken{Token: features.NewToken(parts[0]), Tag: t.Tag})
		if len(parts) == 2 {
			tag, ok := cliticTags[strings.ToLower(parts[1])]
			if !ok {
				tag = t.Tag
			}
			out = append(out, features.TaggedToken{Token: features.NewToken(parts[1]), Tag: tag})
		}
	}
	return out, nil
}

// Entities returns the named entities prose extracts. Labels are passed
// through unchanged (PERSON, GPE).
func (Prose) Entities(ctx context.Context, text string) ([]features.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := newDocument(text,
		prose.UsingModel(sharedModel()),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}
	ents := doc.Entities()
	out := make([]features.Entity, len(ents))
	for i, e := range ents {
		out[i] = features.Entity{Text: e.Text, Label: e.Label}
	}
	return out, nil
}
