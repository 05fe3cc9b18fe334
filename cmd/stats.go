package cmd

import (
	"github.com/spf13/cobra"

	apperrors "github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
)

// Stats command flags.
var (
	statsFlagMode      string
	statsFlagYear      int
	statsFlagCompleted bool
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the aggregate count for a mode and year",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFlagMode, "mode", "attendance",
		"Mode: attendance, schedule, todo, memo, counter")
	statsCmd.Flags().IntVar(&statsFlagYear, "year", 0, "Year to scope to (default: current)")
	statsCmd.Flags().BoolVar(&statsFlagCompleted, "completed", false,
		"In todo mode, count completed items instead of active ones")
}

func runStats(cmd *cobra.Command, args []string) error {
	mode, err := model.ParseMode(statsFlagMode)
	if err != nil {
		return apperrors.NewValidationField("mode", "unknown mode",
			"Use one of: attendance, schedule, todo, memo, counter")
	}
	tab := model.TabActive
	if statsFlagCompleted {
		tab = model.TabCompleted
	}
	year := statsFlagYear
	if year == 0 {
		year = ctx.State.Now().Year()
	}

	stat := ctx.State.ModeStat(mode, year, tab)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewStatResponse(stat, year))
	}
	ctx.CLIFormatter().PrintStat(stat)
	return nil
}
