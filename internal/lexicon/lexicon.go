package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var defaultLexiconYAML []byte

// Punctuation is the ASCII punctuation set counted by punctuation_count.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ContractionSuffixes are the clitics recognized by contraction_count.
var ContractionSuffixes = []string{"t", "re", "s", "ve", "ll", "d"}

var firstPerson = []string{"i", "me", "my", "mine", "we", "us", "our", "ours"}
var secondPerson = []string{"you", "your", "yours"}

type Set map[string]struct{}

func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

type SentimentEntry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// Lexicon bundles the closed word lists the feature extractor consults.
// A Lexicon is never mutated after construction and is safe for concurrent reads.
type Lexicon struct {
	Stopwords    Set
	EmotionWords Set
	FirstPerson  Set
	SecondPerson Set
	Negations    Set
	Intensifiers map[string]float64
	Sentiment    map[string]SentimentEntry
}

type document struct {
	Stopwords    []string                  `yaml:"stopwords"`
	EmotionWords []string                  `yaml:"emotion_words"`
	Negations    []string                  `yaml:"negations"`
	Intensifiers map[string]float64        `yaml:"intensifiers"`
	Sentiment    map[string]SentimentEntry `yaml:"sentiment"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the embedded English lexicon. It is parsed once per process.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = Parse(defaultLexiconYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("lexicon: embedded data is invalid: %v", defaultErr))
	}
	return defaultLex
}

func Parse(raw []byte) (*Lexicon, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	return fromDocument(doc), nil
}

// Load reads a YAML lexicon override. Sections present in the file replace the
// matching default section; absent sections keep the embedded defaults.
func Load(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode lexicon %s: %w", path, err)
	}
	var base document
	if err := yaml.Unmarshal(defaultLexiconYAML, &base); err != nil {
		return nil, fmt.Errorf("decode default lexicon: %w", err)
	}
	if len(doc.Stopwords) > 0 {
		base.Stopwords = doc.Stopwords
	}
	if len(doc.EmotionWords) > 0 {
		base.EmotionWords = doc.EmotionWords
	}
	if len(doc.Negations) > 0 {
		base.Negations = doc.Negations
	}
	if len(doc.Intensifiers) > 0 {
		base.Intensifiers = doc.Intensifiers
	}
	if len(doc.Sentiment) > 0 {
		base.Sentiment = doc.Sentiment
	}
	return fromDocument(base), nil
}

func fromDocument(doc document) *Lexicon {
	sentiment := make(map[string]SentimentEntry, len(doc.Sentiment))
	for w, e := range doc.Sentiment {
		sentiment[strings.ToLower(strings.TrimSpace(w))] = e
	}
	intensifiers := make(map[string]float64, len(doc.Intensifiers))
	for w, m := range doc.Intensifiers {
		intensifiers[strings.ToLower(strings.TrimSpace(w))] = m
	}
	return &Lexicon{
		Stopwords:    NewSet(doc.Stopwords...),
		EmotionWords: NewSet(doc.EmotionWords...),
		FirstPerson:  NewSet(firstPerson...),
		SecondPerson: NewSet(secondPerson...),
		Negations:    NewSet(doc.Negations...),
		Intensifiers: intensifiers,
		Sentiment:    sentiment,
	}
}

// IsPunctuation reports whether r belongs to the ASCII punctuation set.
func IsPunctuation(r rune) bool {
	return r < 128 && strings.ContainsRune(Punctuation, r)
}
