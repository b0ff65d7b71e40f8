package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author creating practice questions for an adaptive learning app.

Rules:
- Generate quiz questions for the given topic at the given difficulty level.
- Use only the question types listed in the request.
- Every question must have at least 2 options, and every correct answer must appear verbatim among the options.
- For single-answer types (MCQ single correct, True/False) the answer is one string.
- For multiple-response types the answer is a list of the correct option strings, in any order.
- For sequence and matching types the answer is a list of option strings in the one correct order.
- Questions must be self-contained; for passage-based questions include the passage in the question text.
- Keep language clear and neutral. Plain text only, no markdown.`

// buildUserMessage constructs the generation request for one topic/level.
func buildUserMessage(input GenerateInput, spec LevelSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty level: %d of 3\n", input.Level)
	fmt.Fprintf(&b, "Question types: %s\n", strings.Join(spec.TypeMix, ", "))
	fmt.Fprintf(&b, "Generate at least %d questions.\n", spec.MinQuestions)

	return b.String()
}
