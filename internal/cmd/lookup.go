package cmd

import (
	"github.com/pulseview/cli/pkg/service"
	"github.com/spf13/cobra"
)

var lookupShowAll bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <handle>",
	Short: "Look up an account and show its recent posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService()
		return svc.Lookup(args[0], lookupShowAll)
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupShowAll, "all", false, "Fetch up to 100 posts instead of 5")
}
