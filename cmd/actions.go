package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskpilot/riskpilot/internal/progression"
)

var actionsCmd = &cobra.Command{
	Use:   "actions <assessment-id>",
	Short: "List remediation action items derived from high-risk answers",
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

		items := progression.RecommendedActions(asmt)
		if len(items) == 0 {
			fmt.Println("No action items. No answered question resolves to risk 70 or higher.")
			return nil
		}

		fmt.Printf("%-8s  %-10s  %-10s  %s\n", "Priority", "Question", "Due", "Action")
		fmt.Println(strings.Repeat("─", 90))
		for _, item := range items {
			fmt.Printf("%-8s  %-10s  %-10s  %s\n",
				item.Priority, item.QuestionID,
				item.DueDate.Format("2006-01-02"), item.Title)
		}
		return nil
	},
}
