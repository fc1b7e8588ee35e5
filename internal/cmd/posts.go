package cmd

import (
	"github.com/pulseview/cli/pkg/service"
	"github.com/spf13/cobra"
)

var postsShowAll bool

var postsCmd = &cobra.Command{
	Use:   "posts <handle>",
	Short: "List an account's recent posts with an engagement summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService()
		return svc.Posts(args[0], postsShowAll)
	},
}

func init() {
	postsCmd.Flags().BoolVar(&postsShowAll, "all", false, "Fetch up to 100 posts instead of 5")
}
