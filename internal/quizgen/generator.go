package quizgen

import "context"

// SetGenerator produces a full question set for one topic/level attempt.
type SetGenerator interface {
	// GenerateSet requests questions for the given input and returns the
	// validated set in provider order. A provider failure or a response
	// with zero valid records returns an error; partial sets (some records
	// dropped by validation) are returned as-is.
	GenerateSet(ctx context.Context, input GenerateInput) ([]Question, error)
}

// GenerateInput holds the context for one set generation.
type GenerateInput struct {
	// Topic is the learner-chosen subject, free text.
	Topic string

	// Level is the difficulty tier (1-3) driving the type mix and count.
	Level int
}
