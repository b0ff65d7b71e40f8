package quizgen

import "github.com/abhisek/quizup/internal/llm"

// SetSchema defines the JSON schema for LLM question-set responses.
// The answer field is a union: a string for single-answer types, a list of
// strings for multiple-response, sequence, and matching types.
var SetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A batch of quiz questions for one topic and difficulty level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, self-contained plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    2,
							"description": "The choices shown to the learner, at least 2",
						},
						"answer": map[string]any{
							"oneOf": []any{
								map[string]any{"type": "string"},
								map[string]any{
									"type":     "array",
									"items":    map[string]any{"type": "string"},
									"minItems": 1,
								},
							},
							"description": "The correct option text, or a list of option texts for multi/ordered types",
						},
						"type": map[string]any{
							"type":        "string",
							"description": "The question type label, e.g. \"MCQ (Single Correct)\" or \"Sequence Ordering\"",
						},
					},
					"required":             []any{"question", "options", "answer", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
