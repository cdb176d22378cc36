package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/nexus/internal/progress"
	"github.com/abhisek/nexus/internal/puzzle"
	"github.com/abhisek/nexus/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression statistics",
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

		rec, err := s.ProgressRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load saved game: %w", err)
		}
		if rec == nil {
			fmt.Println("No saved game yet. Run `nexus play` to start.")
			return nil
		}
		state := progress.FromRecord(rec)

		fmt.Printf("Total score:     %d\n", state.TotalScore)
		fmt.Printf("Unlocked level:  %d/%d\n", state.UnlockedLevel, puzzle.MaxLevelID())
		fmt.Printf("Puzzles seen:    %d\n", len(state.SeenPuzzles))
		fmt.Println()

		fmt.Printf("%-3s  %-22s  %-16s  %-6s  %s\n", "Lvl", "Title", "Category", "Wins", "Medal")
		fmt.Println(strings.Repeat("─", 64))
		for _, lvl := range puzzle.Levels() {
			if !state.Unlocked(lvl.ID) {
				fmt.Printf("%-3d  %-22s  %s\n", lvl.ID, lvl.Title, "locked")
				continue
			}
			medal := "-"
			if m, ok := state.Medals[lvl.ID]; ok {
				medal = string(m)
			}
			fmt.Printf("%-3d  %-22s  %-16s  %d/%-4d  %s\n",
				lvl.ID, lvl.Title, lvl.Category, state.Wins(lvl.ID), lvl.RequiredWins, medal)
		}
		return nil
	},
}
