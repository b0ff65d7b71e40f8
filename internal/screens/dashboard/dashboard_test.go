package dashboard

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/abhisek/quizup/internal/store"
)

func TestTruncateCutsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("日本語の問題文", 10)

	got := truncate(long, 20)

	if !utf8.ValidString(got) {
		t.Errorf("truncated text is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 20 {
		t.Errorf("expected 20 runes, got %d", n)
	}
}

func TestTruncateKeepsShortText(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Errorf("got %q, want unchanged input", got)
	}
}

func TestViewTruncatesRecentAnswersSafely(t *testing.T) {
	s := New(nil)
	s.Update(dashboardLoadedMsg{
		Levels: []store.LevelStat{{Level: 1, Answered: 1, Correct: 1}},
		Recent: []store.AnswerEvent{{
			AnswerEventData: store.AnswerEventData{
				Topic:        "歴史",
				QuestionText: strings.Repeat("徳川幕府はいつ成立しましたか", 8),
				Correct:      true,
				Level:        1,
			},
		}},
		Total:   1,
		Correct: 1,
		Highest: 1,
	})

	view := s.View(80, 24)
	if !utf8.ValidString(view) {
		t.Error("view contains invalid UTF-8 after truncation")
	}
	if !strings.Contains(view, "...") {
		t.Error("expected long question text to be truncated")
	}
}
