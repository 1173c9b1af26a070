package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptctl/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage promptctl configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Init()
		if err != nil {
			return err
		}
		fmt.Println(greenStyle.Render("Config created at " + path))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Println(greenStyle.Render(fmt.Sprintf("Set %s = %s", args[0], args[1])))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if jsonOut {
			printJSON(cfg)
			return nil
		}
		fmt.Printf("  model: %s\n", cfg.Model)
		fmt.Printf("  temperature: %g\n", cfg.Temperature)
		fmt.Printf("  max_tokens: %d\n", cfg.MaxTokens)
		if cfg.APIKey != "" {
			fmt.Printf("  api_key: %s\n", maskKey(cfg.APIKey))
		}
		return nil
	},
}

func maskKey(key string) string {
	if len(key) > 8 {
		return key[:8] + "..."
	}
	return "***"
}

func init() {
	configCmd.AddCommand(configInitCmd, configSetCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
