package cmd

import (
	"github.com/pulseview/cli/pkg/service"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <handle>",
	Short: "Chart an account's engagement over the last 7 days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService()
		if err := svc.Lookup(args[0], false); err != nil {
			return err
		}
		return svc.ShowHistory()
	},
}
