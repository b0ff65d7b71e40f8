package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizup/internal/router"
	"github.com/abhisek/quizup/internal/screen"
	"github.com/abhisek/quizup/internal/store"
	"github.com/abhisek/quizup/internal/ui/components"
	"github.com/abhisek/quizup/internal/ui/layout"
	"github.com/abhisek/quizup/internal/ui/theme"
)

type dashboardLoadedMsg struct {
	Levels  []store.LevelStat
	Recent  []store.AnswerEvent
	Total   int
	Correct int
	Highest int
	Err     error
}

// DashboardScreen displays per-level accuracy and recent answers.
type DashboardScreen struct {
	eventRepo store.EventRepo
	levels    []store.LevelStat
	recent    []store.AnswerEvent
	total     int
	correct   int
	highest   int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(eventRepo store.EventRepo) *DashboardScreen {
	return &DashboardScreen{eventRepo: eventRepo}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		levels, err := s.eventRepo.LevelStats(ctx)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		recent, err := s.eventRepo.RecentAnswers(ctx, 10)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		total, correct, err := s.eventRepo.Totals(ctx)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		highest, err := s.eventRepo.HighestLevel(ctx)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}

		return dashboardLoadedMsg{
			Levels:  levels,
			Recent:  recent,
			Total:   total,
			Correct: correct,
			Highest: highest,
		}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.levels = msg.Levels
			s.recent = msg.Recent
			s.total = msg.Total
			s.correct = msg.Correct
			s.highest = msg.Highest
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading dashboard...")
	}
	if s.total == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Totals line.
	accuracy := float64(s.correct) / float64(s.total) * 100
	totals := fmt.Sprintf("Answered %d   Correct %d   Accuracy %.0f%%   Best level %d",
		s.total, s.correct, accuracy, s.highest)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(totals)))
	b.WriteString("\n\n")

	// Per-level accuracy bars.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Accuracy by level")))
	b.WriteString("\n")
	barWidth := min(width-20, 50)
	for _, ls := range s.levels {
		bar := components.NewProgressBar(
			fmt.Sprintf("Level %d (%d/%d)", ls.Level, ls.Correct, ls.Answered),
			ls.Accuracy(), true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Recent answers.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent answers")))
	b.WriteString("\n")
	for _, a := range s.recent {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !a.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		text := a.QuestionText
		if maxLen := width - 30; maxLen > 10 {
			text = truncate(text, maxLen)
		}
		line := fmt.Sprintf("%s  L%d  %s  %s", mark, a.Level, a.Topic, text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// truncate shortens s to at most max runes, ellipsis included.
// Cutting on a rune boundary keeps multi-byte question text intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
