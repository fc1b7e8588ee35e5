package cmd

import (
	"github.com/pulseview/cli/pkg/client"
	"github.com/pulseview/cli/pkg/config"
	"github.com/pulseview/cli/pkg/formatter"
	"github.com/pulseview/cli/pkg/prompter"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Store a bearer token for the backend proxy",
	Long: `Store a bearer token sent with every backend request. The default
placeholder is fine for a local backend, which substitutes its own
platform credential server-side.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := config.GetString("api.bearer_token")
		if current != "" && current != config.PlaceholderToken {
			replace, err := prompter.PromptConfirm("A token is already stored. Replace it?")
			if err != nil {
				return err
			}
			if !replace {
				formatter.PrintInfo("Keeping the current token")
				return nil
			}
		}

		token, err := prompter.PromptSecret("Bearer token: ")
		if err != nil {
			return err
		}
		if token == "" {
			formatter.PrintWarning("Empty token; keeping the current value")
			return nil
		}

		if err := config.SetString("api.bearer_token", token); err != nil {
			formatter.PrintError("Failed to save token: %v", err)
			return err
		}
		client.SetBearerToken(token)

		formatter.PrintSuccess("Token saved")
		return nil
	},
}
