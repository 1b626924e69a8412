package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskpilot/riskpilot/internal/app"
	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/progression"
)

// openApp wires the services for a command invocation.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	a, err := app.New(cmd.Context(), dbPath)
	if err != nil {
		return nil, err
	}
	return a, nil
}

var newCmd = &cobra.Command{
	Use:   "new <subject>",
	Short: "Start a new assessment for a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		asmt := assessment.New(args[0])
		if err := a.Assessments.Save(cmd.Context(), asmt); err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}

		fmt.Printf("Created assessment %s for %q at the %s tier.\n",
			asmt.ID, asmt.Subject, asmt.Tier.Label())
		fmt.Printf("%d questions in scope. Answer with: riskpilot answer %s <question-id> <value>\n",
			len(catalog.ForTier(asmt.Tier)), asmt.ID)
		return nil
	},
}

var answerCmd = &cobra.Command{
	Use:   "answer <assessment-id> <question-id> <value>...",
	Short: "Record an answer on an assessment",
	Long: `Record an answer on an assessment.

Yes/no and choice questions take a single value; checkbox questions
take one value per selected option. Answering a question again
replaces the earlier answer.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		comment, _ := cmd.Flags().GetString("comment")
		spent, _ := cmd.Flags().GetDuration("spent")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		asmt, err := a.Assessments.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}
		q, err := catalog.Get(args[1])
		if err != nil {
			return err
		}

		resp := assessment.Response{
			QuestionID: q.ID,
			Comment:    comment,
			RecordedAt: time.Now(),
		}
		if q.AnswerType == catalog.AnswerMultiChoice {
			resp.Selected = args[2:]
		} else {
			if len(args) > 3 {
				return fmt.Errorf("question %s takes a single value", q.ID)
			}
			resp.Value = args[2]
		}

		if err := asmt.RecordResponse(resp); err != nil {
			return err
		}
		if spent > 0 {
			asmt.AddTime(spent)
		}
		if err := a.Assessments.Save(ctx, asmt); err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}

		fmt.Printf("Recorded %s. Completion: %.0f%%\n", q.ID, progression.Completion(asmt))
		return nil
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause <assessment-id>",
	Short: "Pause an in-progress assessment",
	Args:  cobra.ExactArgs(1),
	RunE:  transitionRunE((*assessment.Assessment).Pause, "Paused assessment %s.\n"),
}

var resumeCmd = &cobra.Command{
	Use:   "resume <assessment-id>",
	Short: "Resume a paused assessment",
	Args:  cobra.ExactArgs(1),
	RunE:  transitionRunE((*assessment.Assessment).Resume, "Resumed assessment %s.\n"),
}

var completeCmd = &cobra.Command{
	Use:   "complete <assessment-id>",
	Short: "Finalize an assessment",
	Long: `Finalize an assessment. Completed assessments reject further answers
and become the subject's baseline for auto-populating future assessments.`,
	Args: cobra.ExactArgs(1),
	RunE: transitionRunE((*assessment.Assessment).Complete, "Completed assessment %s.\n"),
}

// transitionRunE builds a RunE that loads the assessment, applies one
// status transition and saves.
func transitionRunE(transition func(*assessment.Assessment) error, doneFormat string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		asmt, err := a.Assessments.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}
		if err := transition(asmt); err != nil {
			return err
		}
		if err := a.Assessments.Save(ctx, asmt); err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}
		fmt.Printf(doneFormat, asmt.ID)
		return nil
	}
}

var retakeCmd = &cobra.Command{
	Use:   "retake <assessment-id>",
	Short: "Clear an assessment's responses and restart at the basic tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		asmt, err := a.Assessments.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}

		asmt.Retake()
		if err := a.Assessments.Save(ctx, asmt); err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}

		fmt.Printf("Assessment %s reset to the %s tier with no responses.\n",
			asmt.ID, asmt.Tier.Label())
		return nil
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance <assessment-id>",
	Short: "Promote the assessment to the next tier if it qualifies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		asmt, err := a.Assessments.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}

		next := progression.NextTier(asmt)
		if next == asmt.Tier {
			fmt.Printf("Assessment stays at the %s tier (completion %.0f%%, engagement %.2f).\n",
				asmt.Tier.Label(), progression.Completion(asmt), progression.EngagementScore(asmt))
			return nil
		}

		if err := asmt.PromoteTier(next); err != nil {
			return err
		}
		if err := a.Assessments.Save(ctx, asmt); err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}

		fmt.Printf("Promoted to the %s tier. %d questions now in scope.\n",
			next.Label(), len(catalog.ForTier(next)))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <assessment-id>",
	Short: "Show an assessment's progress and recommended next steps",
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

		fmt.Printf("Subject:     %s\n", asmt.Subject)
		fmt.Printf("Status:      %s\n", asmt.Status)
		fmt.Printf("Tier:        %s\n", asmt.Tier.Label())
		fmt.Printf("Completion:  %.0f%%\n", progression.Completion(asmt))
		fmt.Printf("Engagement:  %.2f\n", progression.EngagementScore(asmt))
		fmt.Printf("Time spent:  %s\n", asmt.TimeSpent.Round(time.Second))

		fmt.Println()
		fmt.Println("Next steps:")
		for _, step := range progression.NextSteps(asmt) {
			fmt.Printf("  [%s] %s (~%s)\n",
				step.Priority, step.Description, step.EstimatedTime)
		}
		return nil
	},
}

func init() {
	answerCmd.Flags().String("comment", "", "Free-text note attached to the answer")
	answerCmd.Flags().Duration("spent", 0, "Time spent answering, e.g. 90s or 3m")
}
