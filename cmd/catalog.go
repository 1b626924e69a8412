package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskpilot/riskpilot/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the question catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryFilter, _ := cmd.Flags().GetString("category")
		verbose, _ := cmd.Flags().GetBool("verbose")

		fmt.Printf("Question catalog %s\n\n", catalog.Version())

		for _, cat := range catalog.AllCategories() {
			if categoryFilter != "" && string(cat) != categoryFilter {
				continue
			}
			fmt.Println(cat.DisplayName())
			fmt.Println(strings.Repeat("─", 80))
			for _, q := range catalog.ByCategory(cat) {
				fmt.Printf("%-10s  [%s, weight %d]  %s\n",
					q.ID, q.Complexity.Label(), q.Weight, q.Text)
				if verbose {
					for _, v := range q.LegalValues() {
						fmt.Printf("              - %s\n", v)
					}
					if q.RegulatoryReference != "" {
						fmt.Printf("              ref: %s\n", q.RegulatoryReference)
					}
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("category", "", "Show one category: administrative, physical, or technical")
	catalogCmd.Flags().BoolP("verbose", "v", false, "Include answer options and regulatory references")
}
