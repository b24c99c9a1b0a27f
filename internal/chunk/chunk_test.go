package chunk

import (
	"strings"
	"testing"
)

func TestSlidingWindowCoversEveryWord(t *testing.T) {
	words := make([]string, 5000)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	windows := SlidingWindow(text, 1500, 1300)
	if len(windows) != 4 {
		t.Fatalf("expected 4 windows, got %d", len(windows))
	}

	covered := make([]bool, 5000)
	for i, w := range windows {
		if w.Index != i {
			t.Fatalf("expected index %d, got %d", i, w.Index)
		}
		if w.StartWord < 0 || w.EndWord > 5000 || w.StartWord >= w.EndWord {
			t.Fatalf("invalid window bounds: %+v", w)
		}
		for j := w.StartWord; j < w.EndWord; j++ {
			covered[j] = true
		}
	}
	for i, ok := range covered {
		if !ok {
			t.Fatalf("data loss at word index %d", i)
		}
	}
}

func TestSlidingWindowDefaults(t *testing.T) {
	windows := SlidingWindow("a b c d e", 2, 0)
	if len(windows) != 3 {
		t.Fatalf("expected 3 non-overlapping windows, got %d", len(windows))
	}
	if windows[2].Text != "e" {
		t.Fatalf("expected short final window, got %q", windows[2].Text)
	}
	if got := SlidingWindow("   ", 10, 5); got != nil {
		t.Fatalf("expected no windows for blank text, got %v", got)
	}
	if got := SlidingWindow("a b", 0, 1); got != nil {
		t.Fatalf("expected no windows for zero size, got %v", got)
	}
	one := SlidingWindow("a   b\n c", 10, 5)
	if len(one) != 1 || one[0].Text != "a b c" {
		t.Fatalf("expected one collapsed window, got %v", one)
	}
}
