package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptctl/lint"
)

var (
	lintModel string
	lintWatch bool
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint prompt template YAML files",
}

var lintCheckCmd = &cobra.Command{
	Use:   "check <file.yaml>",
	Short: "Check a YAML prompt template for issues (no API call)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if lintWatch {
			return lint.Watch(cmd.Context(), args[0], func(report *lint.Report, err error) {
				if err != nil {
					fmt.Printf("%s %v\n", redStyle.Render("Error:"), err)
					return
				}
				printLintReport(report)
			})
		}
		report, err := lint.Check(args[0])
		if err != nil {
			return err
		}
		if jsonOut {
			printJSON(report)
			return nil
		}
		printLintReport(report)
		return nil
	},
}

var lintFixCmd = &cobra.Command{
	Use:   "fix <file.yaml>",
	Short: "Suggest AI-powered fixes for lint violations (Pro)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := newClient()
		if err != nil {
			return err
		}
		fix, err := lint.NewFixer(c, cfg).Suggest(cmd.Context(), args[0], lintModel)
		if err != nil {
			return err
		}
		if jsonOut {
			printJSON(fix)
			return nil
		}
		if len(fix.ViolationsAddressed) == 0 {
			fmt.Println(greenStyle.Render("No violations to fix."))
			return nil
		}
		fmt.Printf("\n%s %s\n", boldStyle.Render("Explanation:"), fix.Explanation)
		fmt.Printf("\n%s\n%s\n", boldStyle.Render("Fixed YAML:"), fix.Fixed)
		fmt.Printf("\nAddressed: %s\n", strings.Join(fix.ViolationsAddressed, ", "))
		return nil
	},
}

var lintRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all built-in lint rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rules := lint.Rules()
		if jsonOut {
			printJSON(rules)
			return nil
		}
		fmt.Printf("%-6s %-22s %-9s %-12s %s\n", "ID", "NAME", "SEVERITY", "CATEGORY", "DESCRIPTION")
		for _, r := range rules {
			fmt.Printf("%-6s %-22s %-9s %-12s %s\n",
				r.ID, r.Name, styledSeverity(string(r.Severity)), r.Category, r.Description)
		}
		return nil
	},
}

func printLintReport(report *lint.Report) {
	if len(report.Violations) == 0 {
		fmt.Println(greenStyle.Render("No issues found."))
		return
	}
	fmt.Printf("%-6s %-9s %-5s %s\n", "RULE", "SEVERITY", "LINE", "MESSAGE")
	for _, v := range report.Violations {
		line := ""
		if v.Line > 0 {
			line = fmt.Sprintf("%d", v.Line)
		}
		fmt.Printf("%-6s %-9s %-5s %s\n", v.RuleID, styledSeverity(string(v.Severity)), line, v.Message)
	}
	fmt.Printf("\n%s\n", report.Summary)
}

func init() {
	lintCheckCmd.Flags().BoolVarP(&lintWatch, "watch", "w", false, "re-lint on file changes")
	lintFixCmd.Flags().StringVarP(&lintModel, "model", "m", "", "override model")

	lintCmd.AddCommand(lintCheckCmd, lintFixCmd, lintRulesCmd)
	rootCmd.AddCommand(lintCmd)
}
