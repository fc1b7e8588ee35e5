package cmd

import (
	"github.com/pulseview/cli/pkg/service"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an account's recent posts",
}

var analyzeSentimentCmd = &cobra.Command{
	Use:   "sentiment <handle>",
	Short: "Score the sentiment of an account's recent posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService()
		if err := svc.Lookup(args[0], false); err != nil {
			return err
		}
		return svc.AnalyzeSentiment()
	},
}

var analyzeAICmd = &cobra.Command{
	Use:   "ai <handle>",
	Short: "Generate an AI narrative analysis of an account's recent posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService()
		if err := svc.Lookup(args[0], false); err != nil {
			return err
		}
		return svc.AnalyzeWithAI()
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeSentimentCmd)
	analyzeCmd.AddCommand(analyzeAICmd)
}
