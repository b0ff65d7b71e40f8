package topic

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizup/internal/quizgen"
	"github.com/abhisek/quizup/internal/router"
	"github.com/abhisek/quizup/internal/screen"
	"github.com/abhisek/quizup/internal/screens/quiz"
	"github.com/abhisek/quizup/internal/session"
	"github.com/abhisek/quizup/internal/store"
	"github.com/abhisek/quizup/internal/ui/components"
	"github.com/abhisek/quizup/internal/ui/layout"
	"github.com/abhisek/quizup/internal/ui/theme"
)

// TopicScreen prompts for the quiz subject before a session begins.
type TopicScreen struct {
	generator quizgen.SetGenerator
	eventRepo store.EventRepo
	policy    session.Policy
	input     components.TextInput
	errMsg    string
}

var _ screen.Screen = (*TopicScreen)(nil)
var _ screen.KeyHintProvider = (*TopicScreen)(nil)

// New creates a new TopicScreen.
func New(generator quizgen.SetGenerator, eventRepo store.EventRepo, policy session.Policy) *TopicScreen {
	return &TopicScreen{
		generator: generator,
		eventRepo: eventRepo,
		policy:    policy,
		input:     components.NewTextInput("e.g. the solar system", false, 60),
	}
}

func (t *TopicScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TopicScreen) Title() string {
	return "New Quiz"
}

func (t *TopicScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			topic := strings.TrimSpace(t.input.Value())
			if topic == "" {
				t.errMsg = "Enter a topic to get started."
				return t, nil
			}
			quizScreen := quiz.New(t.generator, t.eventRepo, topic, t.policy)
			return t, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: quizScreen}
			}
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TopicScreen) View(width, height int) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("What do you want to be quizzed on?")

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Any subject works: history, chemistry, a favorite book...")

	sections := []string{prompt, hint, "", t.input.View()}

	if t.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
