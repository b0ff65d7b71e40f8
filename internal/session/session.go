package session

import (
	"fmt"
	"time"

	"github.com/abhisek/quizup/internal/quizgen"
)

// ErrInvalidTransition reports a transition invoked from the wrong state.
// The call is rejected without mutating the session; this is a caller
// contract violation, not user-facing text.
type ErrInvalidTransition struct {
	Command string
	From    State
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition %q from state %q", e.Command, e.From)
}

// AnswerOutcome describes the effect of one SubmitAnswer call.
type AnswerOutcome struct {
	// Question is the question that was answered.
	Question quizgen.Question

	// Correct reports whether the submission matched the answer key.
	Correct bool

	// SetComplete is true when this answer exhausted the set.
	SetComplete bool
}

// CompletionOutcome describes the effect of resolving a finished set.
type CompletionOutcome struct {
	// Accuracy is score/setsize for the attempt; 0 for an empty set.
	Accuracy float64

	// Advanced is true when the attempt cleared the mastery threshold
	// below the level cap.
	Advanced bool

	FromLevel int
	ToLevel   int
}

// Start begins a session for the given topic. Valid only from Idle.
func Start(s *SessionState, topic string) error {
	if s.State != StateIdle {
		return &ErrInvalidTransition{Command: "start", From: s.State}
	}

	s.Topic = topic
	s.Started = true
	s.Questions = nil
	s.CurrentIndex = 0
	s.Score = 0
	s.State = StateAwaitingQuestions
	return nil
}

// LoadQuestions installs a fetched question set. Valid only from
// AwaitingQuestions. An empty set skips straight to SetComplete so the
// caller resolves it like any other finished attempt.
func LoadQuestions(s *SessionState, set []quizgen.Question) error {
	if s.State != StateAwaitingQuestions {
		return &ErrInvalidTransition{Command: "load-questions", From: s.State}
	}

	s.Questions = set
	s.CurrentIndex = 0
	if len(set) == 0 {
		s.State = StateSetComplete
	} else {
		s.State = StateInProgress
	}
	return nil
}

// FailLoad aborts the attempt after a generation failure. Valid only from
// AwaitingQuestions; the session returns to Idle and the learner must
// start again. No automatic retry happens anywhere in the core.
func FailLoad(s *SessionState) error {
	if s.State != StateAwaitingQuestions {
		return &ErrInvalidTransition{Command: "fail-load", From: s.State}
	}

	s.Started = false
	s.Topic = ""
	s.Questions = nil
	s.CurrentIndex = 0
	s.Score = 0
	s.State = StateIdle
	return nil
}

// SubmitAnswer evaluates the learner's submission against the current
// question. Valid only from InProgress. Exactly one history entry is
// appended per call, correct or not.
func SubmitAnswer(s *SessionState, sub quizgen.Submission) (AnswerOutcome, error) {
	if s.State != StateInProgress {
		return AnswerOutcome{}, &ErrInvalidTransition{Command: "submit-answer", From: s.State}
	}

	q := s.Questions[s.CurrentIndex]
	correct := quizgen.CheckAnswer(&q, sub)
	if correct {
		s.Score++
	}

	s.History = append(s.History, HistoryEntry{
		Timestamp:    time.Now(),
		QuestionText: q.Text,
		Correct:      correct,
	})

	s.CurrentIndex++
	if s.CurrentIndex == len(s.Questions) {
		s.State = StateSetComplete
	}

	return AnswerOutcome{
		Question:    q,
		Correct:     correct,
		SetComplete: s.State == StateSetComplete,
	}, nil
}

// ResolveSetCompletion scores a finished attempt and moves the level.
// Valid only from SetComplete. Advancement requires accuracy at or above
// the mastery threshold and a level below the cap; everything else retries
// the same level. Both paths clear the set, so the caller must re-fetch
// before the next attempt.
func ResolveSetCompletion(s *SessionState) (CompletionOutcome, error) {
	if s.State != StateSetComplete {
		return CompletionOutcome{}, &ErrInvalidTransition{Command: "resolve-set-completion", From: s.State}
	}

	accuracy := 0.0
	if n := len(s.Questions); n > 0 {
		accuracy = float64(s.Score) / float64(n)
	}

	out := CompletionOutcome{
		Accuracy:  accuracy,
		FromLevel: s.Level,
		ToLevel:   s.Level,
	}

	if accuracy >= s.Policy.MasteryThreshold && s.Level < s.Policy.MaxLevel {
		s.Level++
		out.Advanced = true
		out.ToLevel = s.Level
	}

	s.Score = 0
	s.Questions = nil
	s.CurrentIndex = 0
	s.State = StateAwaitingQuestions
	return out, nil
}

// Reset returns the session to its initial state from anywhere. History
// is preserved; everything else is cleared in place.
func Reset(s *SessionState) {
	s.Level = 1
	s.Score = 0
	s.Topic = ""
	s.Started = false
	s.Questions = nil
	s.CurrentIndex = 0
	s.State = StateIdle
}
