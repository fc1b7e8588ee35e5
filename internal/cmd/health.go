package cmd

import (
	"github.com/pulseview/cli/pkg/service"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the analysis backend is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService()
		return svc.Health()
	},
}
