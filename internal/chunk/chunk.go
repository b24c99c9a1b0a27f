package chunk

import "strings"

type Window struct {
	Index     int    `json:"index"`
	StartWord int    `json:"start_word"`
	EndWord   int    `json:"end_word"`
	Text      string `json:"text"`
}

// SlidingWindow splits text into windows of size whitespace-separated words,
// each starting stride words after the previous one. A stride larger than
// size leaves gaps; a stride of 0 or less means non-overlapping windows. The
// last window is cut short rather than padded.
func SlidingWindow(text string, size, stride int) []Window {
	if size <= 0 {
		return nil
	}
	if stride <= 0 {
		stride = size
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	windows := make([]Window, 0, (len(words)/stride)+1)
	for start := 0; start < len(words); start += stride {
		end := min(start+size, len(words))
		windows = append(windows, Window{
			Index:     len(windows),
			StartWord: start,
			EndWord:   end,
			Text:      strings.Join(words[start:end], " "),
		})
		if end == len(words) {
			break
		}
	}
	return windows
}
