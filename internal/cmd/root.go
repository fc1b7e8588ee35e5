package cmd

import (
	"fmt"
	"os"

	"github.com/pulseview/cli/pkg/config"
	"github.com/pulseview/cli/pkg/errors"
	"github.com/pulseview/cli/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "pulseview",
	Short: "Pulseview - social account analytics dashboard",
	Long: `Pulseview is a terminal dashboard for analyzing a social-media
account: profile, recent posts, sentiment scores, AI-generated analysis,
a chat assistant, and historical engagement charts. All analysis runs in
a local backend service; pulseview talks to it over REST.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Save output format to config
		config.SetString("output.format", outputFmt)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/pulseview/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}
