package cmd

import (
	"github.com/pulseview/cli/pkg/service"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [handle]",
	Short: "Open an interactive dashboard session",
	Long: `Open an interactive session that keeps the account, posts, and
analysis panels loaded between commands. Type 'help' inside the session
for the available commands.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle := ""
		if len(args) > 0 {
			handle = args[0]
		}
		svc := service.NewDashboardService()
		return svc.RunSession(handle)
	},
}
