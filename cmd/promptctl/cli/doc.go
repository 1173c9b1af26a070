package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptctl/document"
)

var docModel string

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Analyze, question, and summarize documents",
}

var docAnalyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a document: extract key points, entities, themes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := newClient()
		if err != nil {
			return err
		}
		analysis, err := document.NewAnalyzer(c, cfg).Analyze(cmd.Context(), args[0], docModel)
		if err != nil {
			return err
		}
		if jsonOut {
			printJSON(analysis)
			return nil
		}
		fmt.Printf("\n%s %s\n", boldStyle.Render("Summary:"), analysis.Summary)
		if len(analysis.KeyPoints) > 0 {
			fmt.Printf("\n%s\n", boldStyle.Render("Key Points:"))
			for _, kp := range analysis.KeyPoints {
				fmt.Printf("  - %s\n", kp)
			}
		}
		if len(analysis.Entities) > 0 {
			fmt.Printf("\n%s %s\n", boldStyle.Render("Entities:"), strings.Join(analysis.Entities, ", "))
		}
		if len(analysis.Themes) > 0 {
			fmt.Printf("\n%s %s\n", boldStyle.Render("Themes:"), strings.Join(analysis.Themes, ", "))
		}
		fmt.Printf("\n%s\n", dimStyle.Render(fmt.Sprintf("%d words, ~%d tokens", analysis.WordCount, analysis.TokenEstimate)))
		return nil
	},
}

var docAskCmd = &cobra.Command{
	Use:   "ask <file> <question>",
	Short: "Ask a question about a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := newClient()
		if err != nil {
			return err
		}
		answer, err := document.NewAnalyzer(c, cfg).Ask(cmd.Context(), args[0], args[1], docModel)
		if err != nil {
			return err
		}
		if jsonOut {
			printJSON(answer)
			return nil
		}
		fmt.Printf("\n%s %s\n", boldStyle.Render("Answer:"), answer.Answer)
		if answer.Confidence != "" {
			fmt.Printf("Confidence: %s\n", answer.Confidence)
		}
		if len(answer.SourceQuotes) > 0 {
			fmt.Printf("\n%s\n", boldStyle.Render("Sources:"))
			for _, q := range answer.SourceQuotes {
				fmt.Printf("  %q\n", q)
			}
		}
		return nil
	},
}

var docSummarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Generate an executive summary of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := newClient()
		if err != nil {
			return err
		}
		summary, err := document.NewAnalyzer(c, cfg).Summarize(cmd.Context(), args[0], docModel)
		if err != nil {
			return err
		}
		if jsonOut {
			printJSON(summary)
			return nil
		}
		fmt.Printf("\n%s %s\n", boldStyle.Render("Summary:"), summary.ExecutiveSummary)
		if len(summary.Sections) > 0 {
			fmt.Printf("\n%s\n", boldStyle.Render("Sections:"))
			for _, s := range summary.Sections {
				fmt.Printf("  - %s\n", s)
			}
		}
		if summary.ChunksProcessed > 1 {
			fmt.Printf("\n%s\n", dimStyle.Render(fmt.Sprintf("(Map-reduce: %d chunks)", summary.ChunksProcessed)))
		}
		return nil
	},
}

func init() {
	docAnalyzeCmd.Flags().StringVarP(&docModel, "model", "m", "", "override model")
	docAskCmd.Flags().StringVarP(&docModel, "model", "m", "", "override model")
	docSummarizeCmd.Flags().StringVarP(&docModel, "model", "m", "", "override model")

	docCmd.AddCommand(docAnalyzeCmd, docAskCmd, docSummarizeCmd)
	rootCmd.AddCommand(docCmd)
}
