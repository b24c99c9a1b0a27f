package features

import "stylometer/internal/lexicon"

type affectiveStats struct {
	polarity     float64
	subjectivity float64
	compound     float64
	emotionRatio float64
}

func computeAffective(words []Token, sentiment Sentiment, compound float64, lex *lexicon.Lexicon) affectiveStats {
	emotions := 0
	for _, w := range words {
		if lex.EmotionWords.Has(w.Lower) {
			emotions++
		}
	}
	return affectiveStats{
		polarity:     sentiment.Polarity,
		subjectivity: sentiment.Subjectivity,
		compound:     compound,
		emotionRatio: ratio(emotions, len(words)),
	}
}
