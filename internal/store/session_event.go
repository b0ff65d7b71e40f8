package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_events
		 (session_id, action, topic, level, questions_served, correct_answers, accuracy, advanced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Action, data.Topic, data.Level,
		data.QuestionsServed, data.CorrectAnswers, data.Accuracy, data.Advanced,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) HighestLevel(ctx context.Context) (int, error) {
	var level int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(level), 1) FROM session_events`,
	).Scan(&level)
	if err != nil {
		return 1, fmt.Errorf("query highest level: %w", err)
	}
	if level < 1 {
		level = 1
	}
	return level, nil
}
