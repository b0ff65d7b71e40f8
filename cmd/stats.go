package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/quizup/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		answered, correct, err := repo.Totals(ctx)
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		if answered == 0 {
			fmt.Println("No quizzes recorded yet.")
			return nil
		}

		highest, err := repo.HighestLevel(ctx)
		if err != nil {
			return fmt.Errorf("query highest level: %w", err)
		}

		fmt.Printf("Answered: %d   Correct: %d   Accuracy: %.0f%%   Best level: %d\n",
			answered, correct, float64(correct)/float64(answered)*100, highest)
		fmt.Println()

		levels, err := repo.LevelStats(ctx)
		if err != nil {
			return fmt.Errorf("query level stats: %w", err)
		}

		fmt.Println("Accuracy by Level")
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-8s  %8s  %8s  %8s\n", "Level", "Answered", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 44))
		for _, ls := range levels {
			fmt.Printf("%-8d  %8d  %8d  %7.0f%%\n",
				ls.Level, ls.Answered, ls.Correct, ls.Accuracy()*100)
		}

		recent, err := repo.RecentAnswers(ctx, 10)
		if err != nil {
			return fmt.Errorf("query recent answers: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent Answers")
			fmt.Println(strings.Repeat("─", 80))
			for _, a := range recent {
				mark := "✓"
				if !a.Correct {
					mark = "✗"
				}
				text := a.QuestionText
				if r := []rune(text); len(r) > 48 {
					text = string(r[:45]) + "..."
				}
				fmt.Printf("%s  L%d  %-16s  %s\n", mark, a.Level, a.Topic, text)
			}
		}

		return nil
	},
}
