package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskpilot/riskpilot/internal/autopopulate"
	"github.com/riskpilot/riskpilot/internal/store"
)

var populateCmd = &cobra.Command{
	Use:   "populate <assessment-id>",
	Short: "Suggest answers from a company profile and prior assessments",
	Long: `Suggest answers for unanswered questions using the strategy cascade:
stated facts, technology inventory, industry patterns, the subject's
previous completed assessment, and (when an LLM is configured)
generative inference.

Suggestions are printed for review. Pass --apply to record them on the
assessment as inferred answers; questions you answered yourself are
never touched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		factsPath, _ := cmd.Flags().GetString("facts")
		apply, _ := cmd.Flags().GetBool("apply")

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

		in := &autopopulate.Input{}
		if factsPath != "" {
			data, err := os.ReadFile(factsPath)
			if err != nil {
				return fmt.Errorf("read facts file: %w", err)
			}
			facts, err := autopopulate.ParseFacts(data)
			if err != nil {
				return err
			}
			in.Facts = facts
		}

		prior, err := a.Assessments.LatestCompleted(ctx, asmt.Subject)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("load prior assessment: %w", err)
		}
		if prior != nil && prior.ID != asmt.ID {
			in.Prior = prior
		}

		suggestions, summary := a.Engine.Populate(ctx, asmt, in)
		for _, s := range suggestions {
			if s.Strategy == "generative" {
				asmt.RecordAIInteraction()
				break
			}
		}

		if len(suggestions) == 0 {
			fmt.Printf("No suggestions (%d questions in scope).\n", summary.Total)
			return a.Assessments.Save(ctx, asmt)
		}

		fmt.Printf("%-10s  %-28s  %4s  %-16s  %s\n",
			"Question", "Answer", "Conf", "Strategy", "Sources")
		fmt.Println(strings.Repeat("─", 90))
		for _, s := range suggestions {
			answer := s.Value
			if len(s.Selected) > 0 {
				answer = strings.Join(s.Selected, ", ")
			}
			if len(answer) > 28 {
				answer = answer[:28]
			}
			fmt.Printf("%-10s  %-28s  %.2f  %-16s  %s\n",
				s.QuestionID, answer, s.Confidence, s.Strategy,
				strings.Join(s.Sources, ","))
		}
		fmt.Println(strings.Repeat("─", 90))
		fmt.Printf("%d of %d questions suggested (%d high / %d medium / %d low confidence)\n",
			summary.Suggested, summary.Total, summary.High, summary.Medium, summary.Low)

		if apply {
			if err := autopopulate.Apply(asmt, suggestions); err != nil {
				return fmt.Errorf("apply suggestions: %w", err)
			}
			fmt.Println("Applied all suggestions as inferred answers.")
		} else {
			fmt.Println("Re-run with --apply to record these as inferred answers.")
		}

		return a.Assessments.Save(ctx, asmt)
	},
}

func init() {
	populateCmd.Flags().String("facts", "", "Path to a company profile JSON file")
	populateCmd.Flags().Bool("apply", false, "Record suggestions on the assessment")
}
