package cmd

import (
	"github.com/riskpilot/riskpilot/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riskpilot",
	Short: "Compliance risk assessment from the terminal",
	Long:  "RiskPilot runs weighted HIPAA risk scoring, AI-assisted answer inference, and tiered assessment progression.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RISKPILOT_DB env var)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(retakeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then RISKPILOT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
