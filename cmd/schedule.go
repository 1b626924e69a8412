package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskpilot/riskpilot/internal/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <subject>",
	Short: "Generate a recurring compliance review calendar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frequency, _ := cmd.Flags().GetString("frequency")
		startStr, _ := cmd.Flags().GetString("start")
		remindDays, _ := cmd.Flags().GetIntSlice("remind-days")

		start := time.Now()
		if startStr != "" {
			var err error
			start, err = time.Parse(time.DateOnly, startStr)
			if err != nil {
				return fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", startStr, err)
			}
		}

		prefs := schedule.Preferences{
			Frequency: schedule.Frequency(frequency),
			StartDate: start,
		}
		for _, days := range remindDays {
			prefs.Triggers = append(prefs.Triggers, schedule.Trigger{
				Type:        fmt.Sprintf("reminder_%dd", days),
				Title:       fmt.Sprintf("Review in %d days", days),
				Description: "Upcoming compliance review",
				DaysBefore:  days,
			})
		}

		plan, err := schedule.BuildPlan(args[0], prefs)
		if err != nil {
			return err
		}

		fmt.Printf("Review plan for %q (%s)\n\n", plan.Subject, plan.Frequency)
		fmt.Printf("%-12s  %-20s  %s\n", "Date", "Type", "Est. duration")
		fmt.Println(strings.Repeat("─", 52))
		for _, interval := range plan.Intervals {
			fmt.Printf("%-12s  %-20s  %s\n",
				interval.Date.Format("2006-01-02"), interval.Type, interval.EstimatedDuration)
		}

		if len(plan.Milestones) > 0 {
			fmt.Println()
			fmt.Println("Reminders:")
			for _, m := range plan.Milestones {
				fmt.Printf("  %s  %s\n", m.Date.Format("2006-01-02"), m.Title)
			}
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().String("frequency", "quarterly", "Review cadence: monthly, quarterly, semi_annual, annual")
	scheduleCmd.Flags().String("start", "", "First review date (YYYY-MM-DD, default today)")
	scheduleCmd.Flags().IntSlice("remind-days", nil, "Reminder lead times in days, e.g. --remind-days 7,1")
}
