package features

import (
	"fmt"
	"math"
)

type stats struct {
	lexical     lexicalStats
	syntactic   syntacticStats
	affective   affectiveStats
	readability readabilityStats
	reference   referenceStats
	ngrams      ngramStats
}

func assemble(s stats) Vector {
	var v Vector
	v[WordCount] = float64(s.lexical.wordCount)
	v[CharCount] = float64(s.lexical.charCount)
	v[AvgWordLength] = s.lexical.avgWordLength
	v[UniqueWordCount] = float64(s.lexical.uniqueWordCount)
	v[TTR] = s.lexical.ttr
	v[HapaxRate] = s.lexical.hapaxRate
	v[ComplexWordCount] = float64(s.lexical.complexWordCount)
	v[SentenceCount] = float64(s.syntactic.sentenceCount)
	v[AvgSentenceLen] = s.syntactic.avgSentenceLen
	v[PunctuationCount] = float64(s.syntactic.punctuationCount)
	v[StopwordCount] = float64(s.syntactic.stopwordCount)
	v[NounRatio] = s.syntactic.nounRatio
	v[VerbRatio] = s.syntactic.verbRatio
	v[AdjRatio] = s.syntactic.adjRatio
	v[AdvRatio] = s.syntactic.advRatio
	v[QuestionCount] = float64(s.syntactic.questionCount)
	v[ExclamationCount] = float64(s.syntactic.exclamationCount)
	v[ContractionCount] = float64(s.syntactic.contractionCount)
	v[SyntaxVariety] = s.syntactic.syntaxVariety
	v[Polarity] = s.affective.polarity
	v[Subjectivity] = s.affective.subjectivity
	v[VaderCompound] = s.affective.compound
	v[EmotionWordRatio] = s.affective.emotionRatio
	v[Flesch] = s.readability.flesch
	v[GunningFog] = s.readability.gunningFog
	v[FirstPersonCount] = float64(s.reference.firstPerson)
	v[SecondPersonCount] = float64(s.reference.secondPerson)
	v[PersonEntitiesCount] = float64(s.reference.personEntities)
	v[DateEntitiesCount] = float64(s.reference.dateEntities)
	v[BigramUniqueness] = s.ngrams.bigram
	v[TrigramUniqueness] = s.ngrams.trigram
	return v
}

type violation struct {
	feature string
	got     float64
	fixed   float64
}

func (v violation) String() string {
	return fmt.Sprintf("%s=%g clamped to %g", v.feature, v.got, v.fixed)
}

// enforceContract clamps bounded slots into their documented range and replaces
// non-finite values with 0. Each correction is returned as a violation.
func enforceContract(v *Vector) []violation {
	var out []violation
	for i, f := range schema {
		got := v[i]
		fixed := got
		switch {
		case math.IsNaN(got) || math.IsInf(got, 0):
			fixed = 0
		case f.Bounded && got < f.Min:
			fixed = f.Min
		case f.Bounded && got > f.Max:
			fixed = f.Max
		}
		if fixed != got {
			v[i] = fixed
			out = append(out, violation{feature: f.Name, got: got, fixed: fixed})
		}
	}
	return out
}
