package features

// LegacySchemaVersion is the ten-slot stylometry layout that predates schema v2.
const LegacySchemaVersion = 1

const NumLegacyFeatures = 10

type LegacyVector [NumLegacyFeatures]float64

var legacyNames = [NumLegacyFeatures]string{
	"word_count",
	"unique_word_count",
	"ttr",
	"hapax_rate",
	"stopword_count",
	"sentence_count",
	"avg_sentence_len",
	"var_sentence_len",
	"bigram_uniqueness",
	"trigram_uniqueness",
}

func LegacyNames() []string {
	out := make([]string, NumLegacyFeatures)
	copy(out, legacyNames[:])
	return out
}

func legacyVector(s stats) LegacyVector {
	return LegacyVector{
		float64(s.lexical.wordCount),
		float64(s.lexical.uniqueWordCount),
		s.lexical.ttr,
		s.lexical.hapaxRate,
		float64(s.syntactic.stopwordCount),
		float64(s.syntactic.sentenceCount),
		s.syntactic.avgSentenceLen,
		s.syntactic.varSentenceLen,
		s.ngrams.bigram,
		s.ngrams.trigram,
	}
}
