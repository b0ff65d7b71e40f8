package store

import (
	"context"
	"database/sql"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = repo default)
}

// AnswerEventData captures one answered question for analytics.
type AnswerEventData struct {
	SessionID    string
	Topic        string
	Level        int
	QuestionText string
	Kind         string
	Submitted    string
	Correct      bool
	TimeMs       int
}

// AnswerEvent is a stored answer outcome.
type AnswerEvent struct {
	ID        int
	Timestamp time.Time
	AnswerEventData
}

// SessionEventData captures a session lifecycle action: "start" when a
// topic is chosen, "complete" when a set is resolved, "abort" on a
// generation failure.
type SessionEventData struct {
	SessionID       string
	Action          string
	Topic           string
	Level           int
	QuestionsServed int
	CorrectAnswers  int
	Accuracy        float64
	Advanced        bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LevelStat aggregates answer outcomes for one level.
type LevelStat struct {
	Level    int
	Answered int
	Correct  int
}

// Accuracy returns the fraction of correct answers, 0 when empty.
func (l LevelStat) Accuracy() float64 {
	if l.Answered == 0 {
		return 0
	}
	return float64(l.Correct) / float64(l.Answered)
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session lifecycle action.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentAnswers returns the most recent answer events, newest first.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerEvent, error)

	// LevelStats aggregates answer outcomes per level, ascending.
	LevelStats(ctx context.Context) ([]LevelStat, error)

	// Totals returns the all-time answered and correct counts.
	Totals(ctx context.Context) (answered, correct int, err error)

	// HighestLevel returns the highest level any session event reached,
	// 1 if nothing is recorded.
	HighestLevel(ctx context.Context) (int, error)

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// eventRepo implements EventRepo on the raw database handle.
type eventRepo struct {
	db *sql.DB
}

var _ EventRepo = (*eventRepo)(nil)
