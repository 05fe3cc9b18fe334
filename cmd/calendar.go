package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/calendar"
	apperrors "github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/tui"
)

// Calendar command flags.
var (
	calendarFlagMode      string
	calendarFlagYear      int
	calendarFlagMonth     int
	calendarFlagCompleted bool
)

// calendarCmd represents the calendar command.
var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Print the year calendar with mode decorations",
	Long: `Print the year calendar. Days are decorated for the selected mode:
attendance marks, schedule coverage, todo activity, memo creation or
counter targets.

Examples:
  daycheck calendar
  daycheck calendar --mode schedule --year 2025
  daycheck calendar --mode todo --completed --month 6`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarFlagMode, "mode", "attendance",
		"Decoration mode: attendance, schedule, todo, memo, counter")
	calendarCmd.Flags().IntVar(&calendarFlagYear, "year", 0, "Year to show (default: current)")
	calendarCmd.Flags().IntVar(&calendarFlagMonth, "month", 0, "Show a single month (1-12)")
	calendarCmd.Flags().BoolVar(&calendarFlagCompleted, "completed", false,
		"In todo mode, decorate completion dates instead of creation dates")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	mode, err := model.ParseMode(calendarFlagMode)
	if err != nil {
		return apperrors.NewValidationField("mode", "unknown mode",
			"Use one of: attendance, schedule, todo, memo, counter")
	}

	tab := model.TabActive
	if calendarFlagCompleted {
		tab = model.TabCompleted
	}
	year := calendarFlagYear
	if year == 0 {
		year = ctx.State.Now().Year()
	}

	view := &calendar.View{State: ctx.State, Mode: mode, Tab: tab}
	today := ctx.State.Today()

	if calendarFlagMonth != 0 {
		if calendarFlagMonth < 1 || calendarFlagMonth > 12 {
			return apperrors.NewValidationField("month", "month must be 1-12", "")
		}
		ctx.Formatter.Println(tui.RenderMonth(view, year, time.Month(calendarFlagMonth), today))
		return nil
	}

	ctx.Formatter.Println(tui.RenderYear(view, year, tui.TerminalWidth(), today))
	return nil
}
