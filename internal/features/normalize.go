package features

import (
	"strings"
	"unicode/utf8"
)

// normalizeInput accepts string, *string, []byte (valid UTF-8) and []rune.
// It reports false for any other value and for text that is blank after trimming.
func normalizeInput(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case *string:
		if t == nil {
			return "", false
		}
		s = *t
	case []byte:
		if !utf8.Valid(t) {
			return "", false
		}
		s = string(t)
	case []rune:
		s = string(t)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
