package quizgen

import "testing"

func singleQ(answer string) *Question {
	return &Question{
		Text:    "Q?",
		Options: []string{"1", "2", "3", answer},
		Kind:    KindSingleChoice,
		Key:     AnswerKey{Single: answer},
	}
}

func TestCheckAnswer_SingleChoice(t *testing.T) {
	q := singleQ("4")

	if !CheckAnswer(q, SingleSubmission("4")) {
		t.Error("exact match should be correct")
	}
	if !CheckAnswer(q, SingleSubmission(" 4 ")) {
		t.Error("whitespace should be trimmed")
	}
	if CheckAnswer(q, SingleSubmission("3")) {
		t.Error("wrong value should be incorrect")
	}
	if CheckAnswer(q, SingleSubmission("")) {
		t.Error("empty submission should be incorrect")
	}
}

func TestCheckAnswer_TrueFalse(t *testing.T) {
	q := &Question{
		Text:    "The sky is green.",
		Options: []string{"True", "False"},
		Kind:    KindTrueFalse,
		Key:     AnswerKey{Single: "False"},
	}

	if !CheckAnswer(q, SingleSubmission("False")) {
		t.Error("expected correct")
	}
	if CheckAnswer(q, SingleSubmission("True")) {
		t.Error("expected incorrect")
	}
}

func TestCheckAnswer_MultipleChoice_SetSemantics(t *testing.T) {
	q := &Question{
		Text:    "Which are prime?",
		Options: []string{"2", "4", "5", "6"},
		Kind:    KindMultipleChoice,
		Key:     AnswerKey{Set: []string{"2", "5"}},
	}

	correct := [][]string{
		{"5", "2"},
		{"2", "5"},
		{"5", "2", "5"}, // duplicates collapse
	}
	for _, sub := range correct {
		if !CheckAnswer(q, MultiSubmission(sub)) {
			t.Errorf("submission %v should be correct", sub)
		}
	}

	incorrect := [][]string{
		{"2"},
		{"2", "5", "4"},
		{},
	}
	for _, sub := range incorrect {
		if CheckAnswer(q, MultiSubmission(sub)) {
			t.Errorf("submission %v should be incorrect", sub)
		}
	}
}

func TestCheckAnswer_Sequence_OrderSensitive(t *testing.T) {
	q := &Question{
		Text:    "Order by size, largest first.",
		Options: []string{"Earth", "Jupiter", "Mars"},
		Kind:    KindSequence,
		Key:     AnswerKey{Sequence: []string{"Jupiter", "Earth", "Mars"}},
	}

	if !CheckAnswer(q, MultiSubmission([]string{"Jupiter", "Earth", "Mars"})) {
		t.Error("matching order should be correct")
	}
	if CheckAnswer(q, MultiSubmission([]string{"Earth", "Jupiter", "Mars"})) {
		t.Error("wrong order should be incorrect")
	}
	if CheckAnswer(q, MultiSubmission([]string{"Jupiter", "Earth"})) {
		t.Error("short sequence should be incorrect")
	}
}

func TestCheckAnswer_ShapeMismatchIsIncorrect(t *testing.T) {
	single := singleQ("4")
	if CheckAnswer(single, MultiSubmission([]string{"4"})) {
		t.Error("list submitted for scalar kind should be incorrect, not an error")
	}

	multi := &Question{
		Kind: KindMultipleChoice,
		Key:  AnswerKey{Set: []string{"a"}},
	}
	if CheckAnswer(multi, SingleSubmission("a")) {
		t.Error("scalar submitted for set kind should be incorrect")
	}

	seq := &Question{
		Kind: KindSequence,
		Key:  AnswerKey{Sequence: []string{"a", "b"}},
	}
	if CheckAnswer(seq, SingleSubmission("a")) {
		t.Error("scalar submitted for sequence kind should be incorrect")
	}
}
