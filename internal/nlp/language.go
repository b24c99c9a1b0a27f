package nlp

import "github.com/abadojack/whatlanggo"

// Language is a best-guess language of a text. The lexicons and the prose
// models are English, so vectors of other languages are still computed but
// their lexicon-based slots are meaningless.
type Language struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Reliable   bool    `json:"reliable"`
}

func DetectLanguage(text string) Language {
	info := whatlanggo.Detect(text)
	return Language{
		Code:       info.Lang.Iso6391(),
		Name:       info.Lang.String(),
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
}

// Foreign reports whether the text was reliably detected as non-English.
func (l Language) Foreign() bool {
	return l.Reliable && l.Code != "" && l.Code != "en"
}
