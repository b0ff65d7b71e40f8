package cmd

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateCutsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("モデル", 20)

	got := truncate(long, 10)

	if !utf8.ValidString(got) {
		t.Errorf("truncated text is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Errorf("expected 10 runes, got %d", n)
	}
}

func TestTruncateKeepsShortText(t *testing.T) {
	if got := truncate("gpt-4o", 32); got != "gpt-4o" {
		t.Errorf("got %q, want unchanged input", got)
	}
}
