package quiz

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizup/internal/quizgen"
	"github.com/abhisek/quizup/internal/router"
	"github.com/abhisek/quizup/internal/screen"
	"github.com/abhisek/quizup/internal/session"
	"github.com/abhisek/quizup/internal/store"
	"github.com/abhisek/quizup/internal/ui/components"
	"github.com/abhisek/quizup/internal/ui/layout"

	"github.com/google/uuid"
)

// QuizScreen drives one quiz session: fetch a set, answer it, resolve
// the level, repeat. All progression rules live in the session package;
// this screen only renders state and persists events.
type QuizScreen struct {
	generator quizgen.SetGenerator
	eventRepo store.EventRepo

	state     *session.SessionState
	sessionID string

	picker          components.OptionPicker
	loading         bool
	showingFeedback bool
	lastOutcome     session.AnswerOutcome
	completion      *session.CompletionOutcome
	focusStop       bool
	errMsg          string
	questionStart   time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given topic.
func New(generator quizgen.SetGenerator, eventRepo store.EventRepo, topic string, policy session.Policy) *QuizScreen {
	state := session.New(policy)
	// A fresh state is always idle, so Start cannot fail here.
	_ = session.Start(state, topic)

	return &QuizScreen{
		generator: generator,
		eventRepo: eventRepo,
		state:     state,
		sessionID: uuid.New().String(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.recordSessionEvent("start", session.CompletionOutcome{})
	s.loading = true
	return s.fetchSet()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status reports the live level and set score for the header.
func (s *QuizScreen) Status() (level, score, total int) {
	return s.state.Level, s.state.Score, s.state.SetSize()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.completion != nil:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Stop"},
		}
	case s.loading:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}

	hints := []layout.KeyHint{{Key: "↑↓", Description: "Move"}}
	if q := s.state.CurrentQuestion(); q != nil && !q.Kind.IsScalar() {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Select"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: "Submit"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setReadyMsg:
		return s.handleSetReady(msg)

	case components.SubmitMsg:
		return s.submitAnswer(msg.Values)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// fetchSet generates the next question set asynchronously.
func (s *QuizScreen) fetchSet() tea.Cmd {
	topic := s.state.Topic
	level := s.state.Level
	return func() tea.Msg {
		set, err := s.generator.GenerateSet(context.Background(), quizgen.GenerateInput{
			Topic: topic,
			Level: level,
		})
		return setReadyMsg{Questions: set, Err: err}
	}
}

func (s *QuizScreen) handleSetReady(msg setReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = false

	if msg.Err != nil {
		s.recordSessionEvent("abort", session.CompletionOutcome{})
		_ = session.FailLoad(s.state)
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	if err := session.LoadQuestions(s.state, msg.Questions); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	// An empty set completes immediately; resolve it as a failed attempt.
	if s.state.State == session.StateSetComplete {
		s.resolveSet()
		return s, nil
	}

	s.setupPicker()
	return s, nil
}

// setupPicker rebuilds the option picker for the current question.
func (s *QuizScreen) setupPicker() {
	q := s.state.CurrentQuestion()
	if q == nil {
		return
	}

	mode := components.PickOne
	switch {
	case q.Kind == quizgen.KindMultipleChoice:
		mode = components.PickMany
	case q.Kind.IsOrdered():
		mode = components.PickOrdered
	}

	s.picker = components.NewOptionPicker(q.Options, mode)
	s.questionStart = time.Now()
}

func (s *QuizScreen) submitAnswer(values []string) (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion()
	if q == nil || len(values) == 0 {
		return s, nil
	}

	var sub quizgen.Submission
	if q.Kind.IsScalar() {
		sub = quizgen.SingleSubmission(values[0])
	} else {
		sub = quizgen.MultiSubmission(values)
	}

	out, err := session.SubmitAnswer(s.state, sub)
	if err != nil {
		return s, nil
	}

	if s.eventRepo != nil {
		timeMs := int(time.Since(s.questionStart).Milliseconds())
		_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:    s.sessionID,
			Topic:        s.state.Topic,
			Level:        s.state.Level,
			QuestionText: out.Question.Text,
			Kind:         string(out.Question.Kind),
			Submitted:    strings.Join(values, ", "),
			Correct:      out.Correct,
			TimeMs:       timeMs,
		})
	}

	s.lastOutcome = out
	s.showingFeedback = true
	return s, nil
}

// resolveSet scores the finished attempt and shows the level outcome.
func (s *QuizScreen) resolveSet() {
	served := s.state.SetSize()
	score := s.state.Score

	out, err := session.ResolveSetCompletion(s.state)
	if err != nil {
		s.errMsg = err.Error()
		return
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:       s.sessionID,
			Action:          "complete",
			Topic:           s.state.Topic,
			Level:           out.ToLevel,
			QuestionsServed: served,
			CorrectAnswers:  score,
			Accuracy:        out.Accuracy,
			Advanced:        out.Advanced,
		})
	}

	s.completion = &out
	s.focusStop = false
}

// completionButtons builds the next-set and stop buttons; the focused
// one is active and handles enter.
func (s *QuizScreen) completionButtons() (next, stop components.Button) {
	next = components.NewButton("Next set", !s.focusStop, func() tea.Cmd {
		s.completion = nil
		s.loading = true
		return s.fetchSet()
	})
	stop = components.NewButton("Stop", s.focusStop, func() tea.Cmd {
		s.recordSessionEvent("abort", session.CompletionOutcome{})
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return next, stop
}

func (s *QuizScreen) recordSessionEvent(action string, out session.CompletionOutcome) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID: s.sessionID,
		Action:    action,
		Topic:     s.state.Topic,
		Level:     s.state.Level,
		Accuracy:  out.Accuracy,
		Advanced:  out.Advanced,
	})
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Feedback overlay — any key continues.
	if s.showingFeedback {
		s.showingFeedback = false
		if s.lastOutcome.SetComplete {
			s.resolveSet()
		} else {
			s.setupPicker()
		}
		return s, nil
	}

	// Level outcome. Arrows move between the next-set and stop buttons,
	// enter activates the focused one, esc always stops.
	if s.completion != nil {
		switch key {
		case "left", "right", "tab":
			s.focusStop = !s.focusStop
			return s, nil
		case "esc":
			s.recordSessionEvent("abort", session.CompletionOutcome{})
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

		next, stop := s.completionButtons()
		var cmd tea.Cmd
		if s.focusStop {
			_, cmd = stop.Update(msg)
		} else {
			_, cmd = next.Update(msg)
		}
		return s, cmd
	}

	if s.loading {
		if key == "esc" {
			s.recordSessionEvent("abort", session.CompletionOutcome{})
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Answering.
	if key == "esc" {
		s.recordSessionEvent("abort", session.CompletionOutcome{})
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}
