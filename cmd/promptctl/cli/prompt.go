package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptctl/prompt"
)

var (
	promptModel       string
	promptTemperature float64
	promptStream      bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Run, version, and compare prompt templates",
}

var promptRunCmd = &cobra.Command{
	Use:   "run <template.yaml>",
	Short: "Run a prompt template against Claude",
	Args:  cobra.ExactArgs(1),
	RunE:  runPromptRun,
}

var promptCompareCmd = &cobra.Command{
	Use:   "compare <template.yaml>",
	Short: "Compare responses across multiple Claude models (Pro)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPromptCompare,
}

var promptSaveCmd = &cobra.Command{
	Use:   "save <template.yaml>",
	Short: "Save a prompt template as a versioned snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, path, err := prompt.SaveVersion(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s → %s\n", greenStyle.Render(fmt.Sprintf("Saved as v%d", num)), path)
		return nil
	},
}

var promptListCmd = &cobra.Command{
	Use:   "list <name>",
	Short: "List versioned snapshots for a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		versions := prompt.ListVersions(args[0])
		if jsonOut {
			printJSON(versions)
			return nil
		}
		if len(versions) == 0 {
			fmt.Printf("No versions found for '%s'\n", args[0])
			return nil
		}
		for _, v := range versions {
			fmt.Printf("  v%d  %s\n", v.Version, v.Path)
		}
		return nil
	},
}

var compareModels string

func init() {
	promptRunCmd.Flags().StringVarP(&promptModel, "model", "m", "", "override model")
	promptRunCmd.Flags().Float64VarP(&promptTemperature, "temperature", "t", -1, "override temperature")
	promptRunCmd.Flags().BoolVarP(&promptStream, "stream", "s", false, "stream response tokens")
	promptCompareCmd.Flags().StringVar(&compareModels, "models", "", "comma-separated model list")

	promptCmd.AddCommand(promptRunCmd, promptCompareCmd, promptSaveCmd, promptListCmd)
	rootCmd.AddCommand(promptCmd)
}

func runPromptRun(cmd *cobra.Command, args []string) error {
	c, cfg, err := newClient()
	if err != nil {
		return err
	}

	opts := prompt.RunOptions{Model: promptModel}
	if cmd.Flags().Changed("temperature") {
		opts.Temperature = &promptTemperature
	}
	if promptStream {
		opts.Stream = true
		opts.OnToken = func(token string) { fmt.Print(token) }
	}

	result, err := prompt.NewRunner(c, cfg).Run(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}
	if promptStream {
		fmt.Println()
	}
	if jsonOut {
		printJSON(result)
		return nil
	}
	fmt.Printf("\n%s  %s\n", boldStyle.Render(result.Model),
		dimStyle.Render(fmt.Sprintf("(%d→%d tokens, $%.4f)", result.InputTokens, result.OutputTokens, result.CostUSD)))
	if !promptStream {
		fmt.Println(result.Response)
	}
	return nil
}

func runPromptCompare(cmd *cobra.Command, args []string) error {
	c, cfg, err := newClient()
	if err != nil {
		return err
	}

	result, err := prompt.NewRunner(c, cfg).Compare(cmd.Context(), args[0], compareModels)
	if err != nil {
		return err
	}
	if jsonOut {
		printJSON(result)
		return nil
	}

	fmt.Printf("%-32s %-14s %-10s %-10s %s\n", "MODEL", "TOKENS", "COST", "LATENCY", "PREVIEW")
	for _, e := range result.Entries {
		preview := e.ResponsePreview
		if len(preview) > 80 {
			preview = preview[:80]
		}
		fmt.Printf("%-32s %-14s $%-9.4f %-10s %s\n",
			e.Model,
			fmt.Sprintf("%d→%d", e.InputTokens, e.OutputTokens),
			e.CostUSD,
			fmt.Sprintf("%.0fms", e.LatencyMS),
			preview,
		)
	}
	return nil
}
