package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events
		 (session_id, topic, level, question_text, kind, submitted, correct, time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Topic, data.Level, data.QuestionText,
		data.Kind, data.Submitted, data.Correct, data.TimeMs,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, session_id, topic, level, question_text, kind, submitted, correct, time_ms
		 FROM answer_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.SessionID, &e.Topic, &e.Level,
			&e.QuestionText, &e.Kind, &e.Submitted, &e.Correct, &e.TimeMs); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) LevelStats(ctx context.Context) ([]LevelStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT level, COUNT(*), SUM(correct)
		 FROM answer_events GROUP BY level ORDER BY level`)
	if err != nil {
		return nil, fmt.Errorf("query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStat
	for rows.Next() {
		var s LevelStat
		if err := rows.Scan(&s.Level, &s.Answered, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan level stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) Totals(ctx context.Context) (answered, correct int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM answer_events`,
	).Scan(&answered, &correct)
	if err != nil {
		return 0, 0, fmt.Errorf("query totals: %w", err)
	}
	return answered, correct, nil
}
