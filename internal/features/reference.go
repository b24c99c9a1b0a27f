package features

import "stylometer/internal/lexicon"

type referenceStats struct {
	firstPerson    int
	secondPerson   int
	personEntities int
	dateEntities   int
}

func computeReference(words []Token, entities []Entity, lex *lexicon.Lexicon) referenceStats {
	var s referenceStats
	for _, w := range words {
		switch {
		case lex.FirstPerson.Has(w.Lower):
			s.firstPerson++
		case lex.SecondPerson.Has(w.Lower):
			s.secondPerson++
		}
	}
	for _, e := range entities {
		switch e.Label {
		case LabelPerson:
			s.personEntities++
		case LabelDate:
			s.dateEntities++
		}
	}
	return s
}
