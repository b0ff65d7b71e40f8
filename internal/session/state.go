package session

import (
	"time"

	"github.com/abhisek/quizup/internal/quizgen"
)

// State identifies where a session is in its lifecycle.
type State int

const (
	// StateIdle means no topic has been chosen yet.
	StateIdle State = iota

	// StateAwaitingQuestions means a topic is chosen but no question set
	// is loaded; the caller must fetch one.
	StateAwaitingQuestions

	// StateInProgress means questions are being answered.
	StateInProgress

	// StateSetComplete means every question in the set has been answered
	// and the attempt awaits resolution.
	StateSetComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingQuestions:
		return "awaiting-questions"
	case StateInProgress:
		return "in-progress"
	case StateSetComplete:
		return "set-complete"
	default:
		return "unknown"
	}
}

// Policy holds the advancement rules for a session. These are inputs, not
// constants baked into transitions.
type Policy struct {
	// MasteryThreshold is the accuracy required to advance a level.
	MasteryThreshold float64

	// MaxLevel is the highest reachable level; passing at MaxLevel
	// retries the level instead of advancing.
	MaxLevel int
}

// DefaultPolicy returns the standard 80% / 3-level progression.
func DefaultPolicy() Policy {
	return Policy{
		MasteryThreshold: 0.80,
		MaxLevel:         3,
	}
}

// HistoryEntry records the outcome of one answered question. Entries are
// append-only and never mutated.
type HistoryEntry struct {
	Timestamp    time.Time
	QuestionText string
	Correct      bool
}

// SessionState is the single mutable entity for one learner session.
// It is owned by the caller and mutated only by the transition functions
// in this package; all transitions are invoked sequentially, so no
// locking is needed.
type SessionState struct {
	// Level is the current difficulty tier, 1..Policy.MaxLevel.
	Level int

	// Score counts correct answers in the current level attempt.
	Score int

	// Topic is the learner-chosen subject. Empty while idle.
	Topic string

	// Started is true once a topic has been chosen and until the
	// session is aborted or reset.
	Started bool

	// Questions is the active question set. Nil when no set is loaded.
	Questions []quizgen.Question

	// CurrentIndex points at the next unanswered question;
	// CurrentIndex == len(Questions) signals set exhaustion.
	CurrentIndex int

	// State is the machine's current lifecycle state.
	State State

	// History is the cumulative append-only outcome log. It survives
	// level transitions and Reset; growth is bounded only by the
	// process lifetime.
	History []HistoryEntry

	// Policy holds the advancement rules.
	Policy Policy
}

// New creates an idle SessionState with the given policy.
func New(policy Policy) *SessionState {
	return &SessionState{
		Level:  1,
		State:  StateIdle,
		Policy: policy,
	}
}

// CurrentQuestion returns the question awaiting an answer, or nil if the
// session is not in progress.
func (s *SessionState) CurrentQuestion() *quizgen.Question {
	if s.State != StateInProgress || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// SetSize returns the length of the loaded question set, 0 if none.
func (s *SessionState) SetSize() int {
	return len(s.Questions)
}
