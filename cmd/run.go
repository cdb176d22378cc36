package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/nexus/internal/app"
	"github.com/abhisek/nexus/internal/game"
	"github.com/abhisek/nexus/internal/llm"
	"github.com/abhisek/nexus/internal/progress"
	"github.com/abhisek/nexus/internal/puzzlegen"
	"github.com/abhisek/nexus/internal/store"
	"github.com/abhisek/nexus/internal/validation"
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

	rec, err := st.ProgressRepo().Load(ctx)
	if err != nil {
		return fmt.Errorf("load saved game: %w", err)
	}
	engine := game.NewEngine(progress.FromRecord(rec), st.ProgressRepo())

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Oracle not configured:", err)
		fmt.Fprintln(os.Stderr, "Playing offline — puzzles come from the built-in archive.")
		// An empty mock always errors, so every request degrades to the
		// fallback bank and local answer matching.
		provider = llm.NewMockProvider()
	}

	return app.Run(app.Options{
		Engine:    engine,
		Generator: puzzlegen.New(provider, puzzlegen.DefaultConfig()),
		Validator: validation.New(provider, validation.DefaultConfig()),
	})
}
