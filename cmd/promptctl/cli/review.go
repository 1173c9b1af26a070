package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptctl/review"
)

var reviewModel string

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "AI code review of files or staged changes",
}

var reviewFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Review a specific file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := review.FileContent(args[0])
		if err != nil {
			return err
		}
		c, cfg, err := newClient()
		if err != nil {
			return err
		}
		report, err := review.NewReviewer(c, cfg).Review(cmd.Context(), content, review.Options{
			Model:      reviewModel,
			SourceFile: args[0],
		})
		if err != nil {
			return err
		}
		printReview(report)
		return nil
	},
}

var reviewDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Review the staged git diff",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		diff, err := review.StagedDiff(cmd.Context())
		if err != nil {
			return err
		}
		if strings.TrimSpace(diff) == "" {
			fmt.Println("No staged changes to review.")
			return nil
		}
		c, cfg, err := newClient()
		if err != nil {
			return err
		}
		report, err := review.NewReviewer(c, cfg).Review(cmd.Context(), diff, review.Options{Model: reviewModel})
		if err != nil {
			return err
		}
		printReview(report)
		return nil
	},
}

func printReview(report *review.Report) {
	if jsonOut {
		printJSON(report)
		return
	}

	if report.Summary != "" {
		fmt.Printf("\n%s %s\n", boldStyle.Render("Summary:"), report.Summary)
	}

	if len(report.Findings) == 0 {
		fmt.Println(greenStyle.Render("No issues found."))
	} else {
		fmt.Printf("\n%-8s  %-16s  %-24s  %s\n", "SEVERITY", "CATEGORY", "LOCATION", "MESSAGE")
		for _, f := range report.Findings {
			loc := f.File
			if f.File != "" && f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", f.File, f.Line)
			}
			fmt.Printf("%-8s  %-16s  %-24s  %s\n",
				styledSeverity(string(f.Severity)), f.Category, loc, f.Message)
		}
	}

	fmt.Printf("\n%s\n", dimStyle.Render(fmt.Sprintf(
		"Model: %s  Tokens: %d→%d  Cost: $%.4f",
		report.Model, report.InputTokens, report.OutputTokens, report.CostUSD)))
}

func init() {
	reviewFileCmd.Flags().StringVarP(&reviewModel, "model", "m", "", "override model")
	reviewDiffCmd.Flags().StringVarP(&reviewModel, "model", "m", "", "override model")

	reviewCmd.AddCommand(reviewFileCmd, reviewDiffCmd)
	rootCmd.AddCommand(reviewCmd)
}
