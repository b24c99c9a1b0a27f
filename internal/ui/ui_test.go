package ui

import (
	"bytes"
	"testing"
)

func TestNewDetectsMode(t *testing.T) {
	var buf bytes.Buffer
	if u := New(&buf, &buf, "json"); !u.IsJSON() || u.Styles.Enabled() {
		t.Fatalf("expected JSON mode without styles, got %v", u.Mode)
	}
	u := New(&buf, &buf, "terminal")
	if u.Mode != OutputModePlain || u.IsInteractive() {
		t.Fatalf("expected plain mode for a buffer, got %v", u.Mode)
	}
	if u.Styles.IconWarning != "WARN:" {
		t.Fatalf("expected ASCII icons, got %q", u.Styles.IconWarning)
	}
	if got := u.Styles.Header.Render("x"); got != "x" {
		t.Fatalf("expected unstyled render, got %q", got)
	}
	if u.Width(72) != 72 {
		t.Fatal("expected fallback width for a buffer")
	}
}
