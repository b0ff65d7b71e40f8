package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/quizup/internal/quizgen"
)

func testSet(n int) []quizgen.Question {
	set := make([]quizgen.Question, n)
	for i := range set {
		set[i] = quizgen.Question{
			Text:    fmt.Sprintf("question %d", i),
			Options: []string{"right", "wrong"},
			Kind:    quizgen.KindSingleChoice,
			Key:     quizgen.AnswerKey{Single: "right"},
		}
	}
	return set
}

// startedState returns a session in InProgress with an n-question set.
func startedState(t *testing.T, n int) *SessionState {
	t.Helper()
	s := New(DefaultPolicy())
	if err := Start(s, "test topic"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := LoadQuestions(s, testSet(n)); err != nil {
		t.Fatalf("LoadQuestions: %v", err)
	}
	return s
}

// answerAll submits every remaining question, making `correct` of them right.
func answerAll(t *testing.T, s *SessionState, correct int) {
	t.Helper()
	for i := 0; s.State == StateInProgress; i++ {
		sub := quizgen.SingleSubmission("wrong")
		if i < correct {
			sub = quizgen.SingleSubmission("right")
		}
		if _, err := SubmitAnswer(s, sub); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
	}
}

func TestStart_FromIdle(t *testing.T) {
	s := New(DefaultPolicy())

	if err := Start(s, "geology"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State != StateAwaitingQuestions {
		t.Errorf("State = %v, want AwaitingQuestions", s.State)
	}
	if !s.Started || s.Topic != "geology" {
		t.Errorf("Started = %v, Topic = %q", s.Started, s.Topic)
	}
}

func TestStart_RejectedWhenNotIdle(t *testing.T) {
	s := startedState(t, 3)

	err := Start(s, "other")
	var inv *ErrInvalidTransition
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s.Topic != "test topic" {
		t.Errorf("rejected call mutated state: Topic = %q", s.Topic)
	}
}

func TestSubmitAnswer_DrivesIndexAndHistory(t *testing.T) {
	const n = 5
	s := startedState(t, n)

	for i := 0; i < n; i++ {
		if s.CurrentIndex != i {
			t.Fatalf("CurrentIndex = %d, want %d", s.CurrentIndex, i)
		}
		out, err := SubmitAnswer(s, quizgen.SingleSubmission("right"))
		if err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if !out.Correct {
			t.Errorf("answer %d: expected correct", i)
		}
		wantComplete := i == n-1
		if out.SetComplete != wantComplete {
			t.Errorf("answer %d: SetComplete = %v, want %v", i, out.SetComplete, wantComplete)
		}
	}

	if s.CurrentIndex != n {
		t.Errorf("CurrentIndex = %d, want %d", s.CurrentIndex, n)
	}
	if len(s.History) != n {
		t.Errorf("history length = %d, want exactly %d", len(s.History), n)
	}
	if s.Score != n {
		t.Errorf("Score = %d, want %d", s.Score, n)
	}
	if s.State != StateSetComplete {
		t.Errorf("State = %v, want SetComplete", s.State)
	}
}

func TestSubmitAnswer_IncorrectStillAppendsHistory(t *testing.T) {
	s := startedState(t, 2)

	out, err := SubmitAnswer(s, quizgen.SingleSubmission("wrong"))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if out.Correct {
		t.Error("expected incorrect")
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if len(s.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(s.History))
	}
	if s.History[0].Correct {
		t.Error("history entry should record the miss")
	}
	if s.History[0].QuestionText != "question 0" {
		t.Errorf("history QuestionText = %q", s.History[0].QuestionText)
	}
}

func TestSubmitAnswer_RejectedWhenIdle(t *testing.T) {
	s := New(DefaultPolicy())

	_, err := SubmitAnswer(s, quizgen.SingleSubmission("x"))
	var inv *ErrInvalidTransition
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(s.History) != 0 || s.Score != 0 {
		t.Error("rejected call mutated state")
	}
}

func TestResolve_AdvancesAtThreshold(t *testing.T) {
	s := startedState(t, 10)
	s.Level = 2
	answerAll(t, s, 8) // 80%

	out, err := ResolveSetCompletion(s)
	if err != nil {
		t.Fatalf("ResolveSetCompletion: %v", err)
	}
	if !out.Advanced {
		t.Error("expected advancement at exactly 80%")
	}
	if out.FromLevel != 2 || out.ToLevel != 3 {
		t.Errorf("FromLevel/ToLevel = %d/%d, want 2/3", out.FromLevel, out.ToLevel)
	}
	if s.Level != 3 {
		t.Errorf("Level = %d, want 3", s.Level)
	}
	if s.Score != 0 || s.Questions != nil || s.CurrentIndex != 0 {
		t.Error("resolution should clear score, set, and index")
	}
	if s.State != StateAwaitingQuestions {
		t.Errorf("State = %v, want AwaitingQuestions", s.State)
	}
}

func TestResolve_RetriesBelowThreshold(t *testing.T) {
	s := startedState(t, 10)
	s.Level = 2
	answerAll(t, s, 7) // 70%

	out, err := ResolveSetCompletion(s)
	if err != nil {
		t.Fatalf("ResolveSetCompletion: %v", err)
	}
	if out.Advanced {
		t.Error("70% should not advance")
	}
	if s.Level != 2 {
		t.Errorf("Level = %d, want 2 unchanged", s.Level)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
}

func TestResolve_LevelCap(t *testing.T) {
	s := startedState(t, 6)
	s.Level = 3
	answerAll(t, s, 6) // 100%

	out, err := ResolveSetCompletion(s)
	if err != nil {
		t.Fatalf("ResolveSetCompletion: %v", err)
	}
	if out.Advanced {
		t.Error("level cap must not advance")
	}
	if s.Level != 3 {
		t.Errorf("Level = %d, want 3", s.Level)
	}
	if s.Score != 0 || s.Questions != nil {
		t.Error("retry-at-cap should still reset score and clear the set")
	}
}

func TestResolve_EmptySet(t *testing.T) {
	s := New(DefaultPolicy())
	if err := Start(s, "t"); err != nil {
		t.Fatal(err)
	}
	if err := LoadQuestions(s, nil); err != nil {
		t.Fatal(err)
	}
	if s.State != StateSetComplete {
		t.Fatalf("empty set should land in SetComplete, got %v", s.State)
	}

	out, err := ResolveSetCompletion(s)
	if err != nil {
		t.Fatalf("ResolveSetCompletion: %v", err)
	}
	if out.Accuracy != 0 {
		t.Errorf("Accuracy = %f, want 0 for empty set", out.Accuracy)
	}
	if out.Advanced {
		t.Error("empty set must force a retry")
	}
}

func TestFailLoad_AbortsToIdle(t *testing.T) {
	s := New(DefaultPolicy())
	if err := Start(s, "t"); err != nil {
		t.Fatal(err)
	}

	if err := FailLoad(s); err != nil {
		t.Fatalf("FailLoad: %v", err)
	}
	if s.State != StateIdle {
		t.Errorf("State = %v, want Idle", s.State)
	}
	if s.Started {
		t.Error("Started should be false after abort")
	}
}

func TestFailLoad_RejectedMidSet(t *testing.T) {
	s := startedState(t, 3)

	err := FailLoad(s)
	var inv *ErrInvalidTransition
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestReset_PreservesHistory(t *testing.T) {
	s := startedState(t, 3)
	answerAll(t, s, 2)
	historyLen := len(s.History)

	Reset(s)

	if s.Level != 1 || s.Score != 0 || s.Started {
		t.Errorf("Reset: Level=%d Score=%d Started=%v", s.Level, s.Score, s.Started)
	}
	if s.State != StateIdle {
		t.Errorf("State = %v, want Idle", s.State)
	}
	if s.Topic != "" || s.Questions != nil || s.CurrentIndex != 0 {
		t.Error("Reset should clear topic, set, and index")
	}
	if len(s.History) != historyLen {
		t.Errorf("history length changed: %d -> %d", historyLen, len(s.History))
	}
}

func TestReset_FromEveryState(t *testing.T) {
	states := []func() *SessionState{
		func() *SessionState { return New(DefaultPolicy()) },
		func() *SessionState {
			s := New(DefaultPolicy())
			_ = Start(s, "t")
			return s
		},
		func() *SessionState { return startedState(t, 2) },
		func() *SessionState {
			s := startedState(t, 1)
			answerAll(t, s, 1)
			return s
		},
	}

	for i, build := range states {
		s := build()
		Reset(s)
		if s.State != StateIdle || s.Level != 1 || s.Score != 0 || s.Started {
			t.Errorf("case %d: Reset left State=%v Level=%d Score=%d Started=%v",
				i, s.State, s.Level, s.Score, s.Started)
		}
	}
}

func TestHistory_AccumulatesAcrossLevels(t *testing.T) {
	s := startedState(t, 5)
	answerAll(t, s, 5)
	if _, err := ResolveSetCompletion(s); err != nil {
		t.Fatal(err)
	}

	// Second attempt at the next level.
	if err := LoadQuestions(s, testSet(4)); err != nil {
		t.Fatal(err)
	}
	answerAll(t, s, 2)

	if len(s.History) != 9 {
		t.Errorf("history length = %d, want 9 across attempts", len(s.History))
	}
}

func TestLoadQuestions_RejectedWhenIdle(t *testing.T) {
	s := New(DefaultPolicy())

	err := LoadQuestions(s, testSet(2))
	var inv *ErrInvalidTransition
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestErrInvalidTransition_Message(t *testing.T) {
	err := &ErrInvalidTransition{Command: "submit-answer", From: StateIdle}
	want := `invalid transition "submit-answer" from state "idle"`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
