package nlp

import (
	"context"
	"regexp"
	"strings"

	"stylometer/internal/features"
)

const (
	monthNames   = `january|february|march|april|june|july|august|september|october|november|december`
	weekdayNames = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	ordinalDay   = `\d{1,2}(?:st|nd|rd|th)?`
	year         = `(?:1[5-9]\d{2}|20\d{2})`
)

// Alternatives are ordered longest first: Go regexps prefer the leftmost
// alternative, not the longest match.
var dateMarkerRegex = regexp.MustCompile(`(?i)\b(?:` + strings.Join([]string{
	`\d{4}-\d{2}-\d{2}`,
	`\d{1,2}/\d{1,2}/\d{2,4}`,
	ordinalDay + `\s+(?:of\s+)?(?:` + monthNames + `|may)(?:,?\s+` + year + `)?`,
	`(?:` + monthNames + `|may)\s+` + ordinalDay + `(?:,?\s+` + year + `)?`,
	`(?:` + monthNames + `|may)\s+` + year,
	`(?:last|next|this)\s+(?:` + weekdayNames + `|week|month|year|night|morning|evening|summer|winter|spring|autumn)`,
	`(?:` + weekdayNames + `)`,
	`the\s+next\s+day|next\s+day|the\s+day\s+(?:before|after)`,
	`yesterday|today|tomorrow|tonight`,
	year + `s`,
	year,
}, "|") + `)\b`)

// DateRecognizer finds calendar dates, weekdays and relative day references.
type DateRecognizer struct{}

func (DateRecognizer) Entities(ctx context.Context, text string) ([]features.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches := dateMarkerRegex.FindAllString(text, -1)
	out := make([]features.Entity, 0, len(matches))
	for _, m := range matches {
		out = append(out, features.Entity{Text: compact(m), Label: features.LabelDate})
	}
	return out, nil
}

var space = regexp.MustCompile(`\s+`)

func compact(s string) string {
	return space.ReplaceAllString(strings.TrimSpace(s), " ")
}
