package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive dashboard",
	Long: `Open the interactive full-screen dashboard: the year calendar with
mode decorations, the per-mode record list and live stats.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(ctx.Views)
	},
}
