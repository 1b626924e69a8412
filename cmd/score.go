package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <assessment-id>",
	Short: "Compute the risk score report for an assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		asmt, err := a.Assessments.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}

		result := scoring.Score(asmt.Responses)

		fmt.Printf("%-16s  %6s  %8s\n", "Category", "Score", "Weight")
		fmt.Println(strings.Repeat("─", 36))
		for _, cat := range catalog.AllCategories() {
			fmt.Printf("%-16s  %6d  %7.0f%%\n",
				cat.DisplayName(), result.PerCategory[cat], scoring.CategoryWeight(cat)*100)
		}
		fmt.Println(strings.Repeat("─", 36))
		fmt.Printf("%-16s  %6d  (%s)\n", "Overall", result.Overall, result.RiskLevel.DisplayName())

		if len(result.CriticalIssues) > 0 {
			fmt.Println()
			fmt.Println("Critical issues:")
			for _, issue := range result.CriticalIssues {
				fmt.Printf("  ! %s\n", issue)
			}
		}
		return nil
	},
}
