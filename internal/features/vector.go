package features

import (
	"encoding/json"
	"fmt"
)

// Vector is the fixed-position feature vector. Slots are addressed with the
// schema constants (v[features.TTR]) or the named accessors.
type Vector [NumFeatures]float64

func (v Vector) Slice() []float64 {
	out := make([]float64, NumFeatures)
	copy(out, v[:])
	return out
}

func (v Vector) Get(name string) (float64, bool) {
	i, ok := IndexOf(name)
	if !ok {
		return 0, false
	}
	return v[i], true
}

func (v Vector) IsZero() bool {
	return v == Vector{}
}

// MarshalJSON encodes the vector as a positional array, the form classifiers consume.
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v[:])
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != NumFeatures {
		return fmt.Errorf("feature vector: expected %d values, got %d", NumFeatures, len(vals))
	}
	copy(v[:], vals)
	return nil
}

func VectorFromSlice(vals []float64) (Vector, error) {
	var v Vector
	if len(vals) != NumFeatures {
		return v, fmt.Errorf("feature vector: expected %d values, got %d", NumFeatures, len(vals))
	}
	copy(v[:], vals)
	return v, nil
}

func (v Vector) WordCount() float64           { return v[WordCount] }
func (v Vector) CharCount() float64           { return v[CharCount] }
func (v Vector) AvgWordLength() float64       { return v[AvgWordLength] }
func (v Vector) UniqueWordCount() float64     { return v[UniqueWordCount] }
func (v Vector) TTR() float64                 { return v[TTR] }
func (v Vector) HapaxRate() float64           { return v[HapaxRate] }
func (v Vector) ComplexWordCount() float64    { return v[ComplexWordCount] }
func (v Vector) SentenceCount() float64       { return v[SentenceCount] }
func (v Vector) AvgSentenceLen() float64      { return v[AvgSentenceLen] }
func (v Vector) PunctuationCount() float64    { return v[PunctuationCount] }
func (v Vector) StopwordCount() float64       { return v[StopwordCount] }
func (v Vector) NounRatio() float64           { return v[NounRatio] }
func (v Vector) VerbRatio() float64           { return v[VerbRatio] }
func (v Vector) AdjRatio() float64            { return v[AdjRatio] }
func (v Vector) AdvRatio() float64            { return v[AdvRatio] }
func (v Vector) QuestionCount() float64       { return v[QuestionCount] }
func (v Vector) ExclamationCount() float64    { return v[ExclamationCount] }
func (v Vector) ContractionCount() float64    { return v[ContractionCount] }
func (v Vector) SyntaxVariety() float64       { return v[SyntaxVariety] }
func (v Vector) Polarity() float64            { return v[Polarity] }
func (v Vector) Subjectivity() float64        { return v[Subjectivity] }
func (v Vector) VaderCompound() float64       { return v[VaderCompound] }
func (v Vector) EmotionWordRatio() float64    { return v[EmotionWordRatio] }
func (v Vector) Flesch() float64              { return v[Flesch] }
func (v Vector) GunningFog() float64          { return v[GunningFog] }
func (v Vector) FirstPersonCount() float64    { return v[FirstPersonCount] }
func (v Vector) SecondPersonCount() float64   { return v[SecondPersonCount] }
func (v Vector) PersonEntitiesCount() float64 { return v[PersonEntitiesCount] }
func (v Vector) DateEntitiesCount() float64   { return v[DateEntitiesCount] }
func (v Vector) BigramUniqueness() float64    { return v[BigramUniqueness] }
func (v Vector) TrigramUniqueness() float64   { return v[TrigramUniqueness] }
