package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizup/internal/quizgen"
	"github.com/abhisek/quizup/internal/router"
	"github.com/abhisek/quizup/internal/screen"
	"github.com/abhisek/quizup/internal/screens/dashboard"
	"github.com/abhisek/quizup/internal/screens/placeholder"
	"github.com/abhisek/quizup/internal/screens/topic"
	"github.com/abhisek/quizup/internal/session"
	"github.com/abhisek/quizup/internal/store"
	"github.com/abhisek/quizup/internal/ui/components"
	"github.com/abhisek/quizup/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu         components.Menu
	totalCount   int
	correctCount int
	highestLevel int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(generator quizgen.SetGenerator, eventRepo store.EventRepo, policy session.Policy) *HomeScreen {
	var total, correct, highest int
	if eventRepo != nil {
		ctx := context.Background()
		total, correct, _ = eventRepo.Totals(ctx)
		highest, _ = eventRepo.HighestLevel(ctx)
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			if generator == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Start Quiz")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: topic.New(generator, eventRepo, policy),
				}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Dashboard")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		totalCount:   total,
		correctCount: correct,
		highestLevel: highest,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("QuizUp")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Pick a topic. Climb three levels.")
	sections = append(sections, title+"\n"+subtitle)

	if h.totalCount > 0 {
		accuracy := float64(h.correctCount) / float64(h.totalCount) * 100
		stats := lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(fmt.Sprintf("Answered %d   Accuracy %.0f%%   Best level %d",
				h.totalCount, accuracy, h.highestLevel))
		sections = append(sections, theme.Card.Render(stats))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
