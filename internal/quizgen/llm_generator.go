package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/quizup/internal/llm"
)

// ErrNoQuestions indicates the provider responded but no record survived
// validation. Callers must not start a quiz attempt on this error.
var ErrNoQuestions = errors.New("no valid questions in provider response")

// LLMGenerator implements SetGenerator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// setOutput is the raw LLM response envelope before validation.
type setOutput struct {
	Questions []RawRecord `json:"questions"`
}

// GenerateSet requests one question set and returns the validated subset.
// A single attempt: transport-level retries live in the llm package, and
// a failed generation is surfaced immediately so the caller can abort the
// session attempt.
func (g *LLMGenerator) GenerateSet(ctx context.Context, input GenerateInput) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	spec := g.config.Spec(input.Level)
	userMsg := buildUserMessage(input, spec)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := ValidateRecords(raw.Questions)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	return questions, nil
}
