// Package cli implements the promptctl command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptctl/client"
	"github.com/randalmurphal/promptctl/config"
)

const version = "0.1.0"

var (
	verbose bool
	jsonOut bool
)

var (
	boldStyle  = lipgloss.NewStyle().Bold(true)
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	severityStyle = map[string]lipgloss.Style{
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
)

var rootCmd = &cobra.Command{
	Use:     "promptctl",
	Short:   "Claude API toolkit for prompt engineering and code review",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output JSON")
}

// Execute runs the command tree.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", redStyle.Render("Error:"), err)
		return err
	}
	return nil
}

func loadConfig() (config.Config, error) {
	return config.Load()
}

// newClient builds the API client from config. Commands that only run local
// checks never call this.
func newClient() (client.Client, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	c, err := client.New()
	if err != nil {
		return nil, cfg, err
	}
	return c, cfg, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func styledSeverity(s string) string {
	if style, ok := severityStyle[s]; ok {
		return style.Render(s)
	}
	return s
}
