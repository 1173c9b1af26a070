package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptctl/config"
	"github.com/randalmurphal/promptctl/license"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show version, license tier, and API key status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	info := license.Current()
	apiKey := config.APIKey()

	fmt.Printf("%s %s\n", boldStyle.Render("promptctl"), version)
	fmt.Printf("License: %s\n", string(info.Tier))
	if apiKey == "" {
		fmt.Printf("API Key: %s\n", redStyle.Render("not set"))
		return nil
	}
	masked := "***"
	if len(apiKey) > 12 {
		masked = apiKey[:8] + "..." + apiKey[len(apiKey)-4:]
	}
	fmt.Printf("API Key: %s\n", greenStyle.Render(masked))
	return nil
}
