package features

import "fmt"

// SchemaVersion identifies the slot layout of Vector. Any reordering, insertion
// or removal of a slot must bump it: classifiers index vectors by position.
const SchemaVersion = 2

const (
	WordCount = iota
	CharCount
	AvgWordLength
	UniqueWordCount
	TTR
	HapaxRate
	ComplexWordCount
	SentenceCount
	AvgSentenceLen
	PunctuationCount
	StopwordCount
	NounRatio
	VerbRatio
	AdjRatio
	AdvRatio
	QuestionCount
	ExclamationCount
	ContractionCount
	SyntaxVariety
	Polarity
	Subjectivity
	VaderCompound
	EmotionWordRatio
	Flesch
	GunningFog
	FirstPersonCount
	SecondPersonCount
	PersonEntitiesCount
	DateEntitiesCount
	BigramUniqueness
	TrigramUniqueness

	NumFeatures
)

type Unit string

const (
	UnitCount        Unit = "count"
	UnitRatio        Unit = "ratio"
	UnitCharsPerWord Unit = "chars/word"
	UnitWordsPerSent Unit = "words/sentence"
	UnitScore        Unit = "score"
	UnitIndex        Unit = "index"
)

// Field describes one slot. Min and Max only apply when Bounded is set; counts
// and readability indices are unbounded.
type Field struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Unit    Unit    `json:"unit"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Bounded bool    `json:"bounded"`
}

var schema = [NumFeatures]Field{
	{WordCount, "word_count", UnitCount, 0, 0, false},
	{CharCount, "char_count", UnitCount, 0, 0, false},
	{AvgWordLength, "avg_word_length", UnitCharsPerWord, 0, 0, false},
	{UniqueWordCount, "unique_word_count", UnitCount, 0, 0, false},
	{TTR, "ttr", UnitRatio, 0, 1, true},
	{HapaxRate, "hapax_rate", UnitRatio, 0, 1, true},
	{ComplexWordCount, "complex_word_count", UnitCount, 0, 0, false},
	{SentenceCount, "sentence_count", UnitCount, 0, 0, false},
	{AvgSentenceLen, "avg_sentence_len", UnitWordsPerSent, 0, 0, false},
	{PunctuationCount, "punctuation_count", UnitCount, 0, 0, false},
	{StopwordCount, "stopword_count", UnitCount, 0, 0, false},
	{NounRatio, "noun_ratio", UnitRatio, 0, 1, true},
	{VerbRatio, "verb_ratio", UnitRatio, 0, 1, true},
	{AdjRatio, "adj_ratio", UnitRatio, 0, 1, true},
	{AdvRatio, "adv_ratio", UnitRatio, 0, 1, true},
	{QuestionCount, "question_count", UnitCount, 0, 0, false},
	{ExclamationCount, "exclamation_count", UnitCount, 0, 0, false},
	{ContractionCount, "contraction_count", UnitCount, 0, 0, false},
	{SyntaxVariety, "syntax_variety", UnitRatio, 0, 1, true},
	{Polarity, "polarity", UnitScore, -1, 1, true},
	{Subjectivity, "subjectivity", UnitScore, 0, 1, true},
	{VaderCompound, "vader_compound", UnitScore, -1, 1, true},
	{EmotionWordRatio, "emotion_word_ratio", UnitRatio, 0, 1, true},
	{Flesch, "flesch", UnitIndex, 0, 0, false},
	{GunningFog, "gunning_fog", UnitIndex, 0, 0, false},
	{FirstPersonCount, "first_person_count", UnitCount, 0, 0, false},
	{SecondPersonCount, "second_person_count", UnitCount, 0, 0, false},
	{PersonEntitiesCount, "person_entities_count", UnitCount, 0, 0, false},
	{DateEntitiesCount, "date_entities_count", UnitCount, 0, 0, false},
	{BigramUniqueness, "bigram_uniqueness", UnitRatio, 0, 1, true},
	{TrigramUniqueness, "trigram_uniqueness", UnitRatio, 0, 1, true},
}

var schemaIndex = func() map[string]int {
	idx := make(map[string]int, NumFeatures)
	for i, f := range schema {
		if f.Index != i {
			panic(fmt.Sprintf("features: schema slot %d declares index %d", i, f.Index))
		}
		idx[f.Name] = i
	}
	return idx
}()

// Schema returns a copy of the canonical slot table.
func Schema() []Field {
	out := make([]Field, NumFeatures)
	copy(out, schema[:])
	return out
}

func Names() []string {
	out := make([]string, NumFeatures)
	for i, f := range schema {
		out[i] = f.Name
	}
	return out
}

// IndexOf returns the slot of a named feature.
func IndexOf(name string) (int, bool) {
	i, ok := schemaIndex[name]
	return i, ok
}

// ValidateNames checks that a classifier's expected input order matches this
// schema exactly.
func ValidateNames(names []string) error {
	if len(names) != NumFeatures {
		return fmt.Errorf("schema v%d has %d features, got %d names", SchemaVersion, NumFeatures, len(names))
	}
	for i, n := range names {
		if schema[i].Name != n {
			return fmt.Errorf("schema v%d slot %d is %q, got %q", SchemaVersion, i, schema[i].Name, n)
		}
	}
	return nil
}
