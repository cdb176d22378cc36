package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/nexus/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect oracle request usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated oracle token usage by purpose",
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

		usage, err := s.EventRepo().LLMUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No oracle usage recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %8s  %8s  %10s  %10s\n",
			"Purpose", "Requests", "Failed", "Input", "Output")
		fmt.Println(strings.Repeat("─", 60))

		var totalReq, totalIn, totalOut int
		for _, u := range usage {
			fmt.Printf("%-16s  %8d  %8d  %10d  %10d\n",
				u.Purpose, u.Requests, u.Failures, u.InputTokens, u.OutputTokens)
			totalReq += u.Requests
			totalIn += u.InputTokens
			totalOut += u.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-16s  %8d  %8s  %10d  %10d\n", "TOTAL", totalReq, "", totalIn, totalOut)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
}
