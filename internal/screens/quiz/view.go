package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizup/internal/quizgen"
	"github.com/abhisek/quizup/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.loading:
		return s.renderLoading(width)
	case s.showingFeedback:
		return s.renderFeedback(width)
	case s.completion != nil:
		return s.renderCompletion(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *QuizScreen) renderQuestionView(width int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing question...")
	}

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.state.Topic))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level %d  Q %d/%d  %s %d",
			s.state.Level,
			s.state.CurrentIndex+1,
			s.state.SetSize(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.state.Score,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.picker.View()))

	// Per-kind instruction line.
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(kindInstruction(q.Kind)))

	return b.String()
}

// kindInstruction explains the controls for the question's answer shape.
func kindInstruction(k quizgen.Kind) string {
	switch {
	case k == quizgen.KindMultipleChoice:
		return "Space toggles an option. Enter submits your selection."
	case k.IsOrdered():
		return "Space picks the next item in order. Enter submits when all are placed."
	default:
		return "Arrows move. Enter submits."
	}
}

// renderFeedback renders the answer feedback overlay.
func (s *QuizScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastOutcome.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", keyString(&s.lastOutcome.Question))))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// keyString formats the answer key for display.
func keyString(q *quizgen.Question) string {
	switch {
	case q.Kind.IsOrdered():
		return strings.Join(q.Key.Sequence, " → ")
	case q.Kind == quizgen.KindMultipleChoice:
		return strings.Join(q.Key.Set, ", ")
	default:
		return q.Key.Single
	}
}

// renderCompletion renders the level outcome after a finished set.
func (s *QuizScreen) renderCompletion(width int) string {
	out := s.completion

	var b strings.Builder
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("%.0f%%", out.Accuracy*100)

	switch {
	case out.Advanced:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Level up!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%s accuracy. Level %d unlocked.", accuracy, out.ToLevel)))

	case out.Accuracy >= s.state.Policy.MasteryThreshold:
		// Passed at the cap.
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Top level cleared!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%s accuracy at level %d. Keep your streak going.", accuracy, out.FromLevel)))

	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render("Set complete"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%s accuracy. You need %.0f%% to advance. Try level %d again.",
				accuracy, s.state.Policy.MasteryThreshold*100, out.FromLevel)))
	}

	b.WriteString("\n\n")
	next, stop := s.completionButtons()
	row := lipgloss.JoinHorizontal(lipgloss.Center, next.View(), "   ", stop.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))

	return b.String()
}

// renderLoading renders the set generation wait state.
func (s *QuizScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  Writing level %d questions about %s...",
			s.state.Level, s.state.Topic))
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
