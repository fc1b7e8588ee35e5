package cmd

import (
	"github.com/pulseview/cli/pkg/service"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <handle>",
	Short: "Chat with the assistant about an account's recent posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService()
		if err := svc.Lookup(args[0], false); err != nil {
			return err
		}
		return svc.ChatLoop()
	},
}
