package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/quizup/internal/llm"
	"github.com/abhisek/quizup/internal/quizgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a topic (no database)",
	Long: `Generate and interactively answer a question set for a topic.

This is a stateless developer tool — no database, no level tracking, no events.
Useful for evaluating question quality at each level.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Quiz topic (required)")
	previewCmd.Flags().Int("level", 1, "Difficulty level: 1, 2, or 3")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	level, _ := cmd.Flags().GetInt("level")

	if level < 1 || level > 3 {
		return fmt.Errorf("invalid level %d: must be 1, 2, or 3", level)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())

	fmt.Printf("Topic: %s (level %d)\n", topic, level)
	fmt.Println("Generating question set...")
	fmt.Println()

	set, err := gen.GenerateSet(ctx, quizgen.GenerateInput{Topic: topic, Level: level})
	if err != nil {
		return fmt.Errorf("generate set: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i, q := range set {
		fmt.Printf("── Question %d/%d (%s) ──\n", i+1, len(set), q.Kind)
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer (numbers, comma-separated for multi/order): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}

		sub, err := parseSubmission(line, q)
		if err != nil {
			fmt.Printf("(%v — counted as wrong)\n", err)
		}

		if err == nil && quizgen.CheckAnswer(&q, sub) {
			correct++
			fmt.Println("✓ Correct!")
		} else {
			fmt.Printf("✗ Wrong. Answer: %s\n", answerString(&q))
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(set))
	return nil
}

// parseSubmission maps 1-based option numbers to a submission matching
// the question's answer shape.
func parseSubmission(line string, q quizgen.Question) (quizgen.Submission, error) {
	parts := strings.Split(line, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > len(q.Options) {
			return quizgen.Submission{}, fmt.Errorf("invalid option %q", p)
		}
		values = append(values, q.Options[n-1])
	}
	if len(values) == 0 {
		return quizgen.Submission{}, fmt.Errorf("no options given")
	}

	if q.Kind.IsScalar() {
		if len(values) != 1 {
			return quizgen.Submission{}, fmt.Errorf("expected one option, got %d", len(values))
		}
		return quizgen.SingleSubmission(values[0]), nil
	}
	return quizgen.MultiSubmission(values), nil
}

func answerString(q *quizgen.Question) string {
	switch {
	case q.Kind.IsOrdered():
		return strings.Join(q.Key.Sequence, " → ")
	case q.Kind == quizgen.KindMultipleChoice:
		return strings.Join(q.Key.Set, ", ")
	default:
		return q.Key.Single
	}
}
