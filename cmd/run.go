package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizup/internal/app"
	"github.com/abhisek/quizup/internal/llm"
	"github.com/abhisek/quizup/internal/quizgen"
	"github.com/abhisek/quizup/internal/session"
	"github.com/abhisek/quizup/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
		Policy:    session.DefaultPolicy(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will be unavailable.")
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return app.Run(opts)
}
