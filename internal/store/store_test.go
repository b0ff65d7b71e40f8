package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAnswerEventRoundtrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:    "s1",
		Topic:        "astronomy",
		Level:        2,
		QuestionText: "Which planet is largest?",
		Kind:         "single_choice",
		Submitted:    "Jupiter",
		Correct:      true,
		TimeMs:       4200,
	})
	require.NoError(t, err)

	events, err := repo.RecentAnswers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "astronomy", events[0].Topic)
	assert.Equal(t, 2, events[0].Level)
	assert.True(t, events[0].Correct)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestRecentAnswersOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	for i, text := range []string{"first", "second", "third"} {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", Topic: "t", Level: 1,
			QuestionText: text, Kind: "single_choice", Correct: i%2 == 0,
		})
		require.NoError(t, err)
	}

	events, err := repo.RecentAnswers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "third", events[0].QuestionText)
	assert.Equal(t, "second", events[1].QuestionText)
}

func TestLevelStatsAndTotals(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	add := func(level int, correct bool) {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", Topic: "t", Level: level,
			QuestionText: "q", Kind: "single_choice", Correct: correct,
		})
		require.NoError(t, err)
	}
	add(1, true)
	add(1, true)
	add(1, false)
	add(2, true)

	stats, err := repo.LevelStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 1, stats[0].Level)
	assert.Equal(t, 3, stats[0].Answered)
	assert.Equal(t, 2, stats[0].Correct)
	assert.InDelta(t, 2.0/3.0, stats[0].Accuracy(), 1e-9)
	assert.Equal(t, 2, stats[1].Level)

	answered, correct, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, answered)
	assert.Equal(t, 3, correct)
}

func TestTotalsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	answered, correct, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Zero(t, answered)
	assert.Zero(t, correct)
}

func TestSessionEventsAndHighestLevel(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	level, err := repo.HighestLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, level)

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", Topic: "biology", Level: 1,
	})
	require.NoError(t, err)
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "complete", Topic: "biology", Level: 2,
		QuestionsServed: 8, CorrectAnswers: 7, Accuracy: 0.875, Advanced: true,
	})
	require.NoError(t, err)

	level, err = repo.HighestLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, level)
}

func TestLLMEventRoundtripAndUsage(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen",
		InputTokens: 100, OutputTokens: 400, LatencyMs: 1500, Success: true,
		RequestBody: `{"topic":"astronomy"}`, ResponseBody: `{"questions":[]}`,
	})
	require.NoError(t, err)
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen",
		InputTokens: 120, OutputTokens: 0, LatencyMs: 500, Success: false,
		ErrorMessage: "rate limited",
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"topic":"astronomy"}`, got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 1)
	assert.Equal(t, "quiz-gen", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 220, byPurpose[0].InputTokens)
	assert.Equal(t, 400, byPurpose[0].OutputTokens)
	assert.Equal(t, int64(1000), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, "gpt-4o-mini", byModel[0].Model)
	assert.Equal(t, 2, byModel[0].Calls)
}
