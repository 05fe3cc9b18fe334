package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
)

// Schedule command flags.
var (
	scheduleFlagFrom         string
	scheduleFlagTo           string
	scheduleFlagSkipWeekends bool
	scheduleFlagSearch       string
)

// scheduleCmd represents the schedule command.
var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched"},
	Short:   "Manage date-ranged schedules",
	RunE:    runScheduleList,
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a schedule over a date range",
	Long: `Add a schedule over a date range. Both bounds accept natural language
and default to today.

Examples:
  daycheck schedule add "Conference" --from 2026-06-03 --to 2026-06-07
  daycheck schedule add "Sprint 12" --from monday --to friday --skip-weekends`,
	Args: cobra.ExactArgs(1),
	RunE: runScheduleAdd,
}

var scheduleEditCmd = &cobra.Command{
	Use:   "edit ID TITLE",
	Short: "Replace a schedule's title, range and weekend flag",
	Args:  cobra.ExactArgs(2),
	RunE:  runScheduleEdit,
}

var scheduleDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runScheduleDelete,
}

var scheduleClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every schedule",
	Args:  cobra.NoArgs,
	RunE:  runScheduleClear,
}

func init() {
	for _, c := range []*cobra.Command{scheduleAddCmd, scheduleEditCmd} {
		c.Flags().StringVar(&scheduleFlagFrom, "from", "", "Start date")
		c.Flags().StringVar(&scheduleFlagTo, "to", "", "End date")
		c.Flags().BoolVar(&scheduleFlagSkipWeekends, "skip-weekends", false,
			"Exclude Saturdays and Sundays")
	}
	scheduleCmd.Flags().StringVar(&scheduleFlagSearch, "search", "", "Filter by title substring")

	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleEditCmd)
	scheduleCmd.AddCommand(scheduleDeleteCmd)
	scheduleCmd.AddCommand(scheduleClearCmd)
}

func scheduleBounds() (string, string, error) {
	now := ctx.State.Now()
	from, err := dates.ParseInput(scheduleFlagFrom, now)
	if err != nil {
		return "", "", err
	}
	to, err := dates.ParseInput(scheduleFlagTo, now)
	if err != nil {
		return "", "", err
	}
	return from, to, nil
}

func runScheduleList(cmd *cobra.Command, args []string) error {
	schedules := ctx.State.SearchSchedules(scheduleFlagSearch)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewSchedulesResponse(schedules))
	}
	ctx.CLIFormatter().PrintSchedules(schedules)
	return nil
}

func runScheduleAdd(cmd *cobra.Command, args []string) error {
	from, to, err := scheduleBounds()
	if err != nil {
		return err
	}
	sched, err := ctx.Views.CreateSchedule(args[0], from, to, scheduleFlagSkipWeekends)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewScheduleOutput(sched))
	}
	cli := ctx.CLIFormatter()
	cli.Success("Schedule created: " + sched.Title)
	cli.Printf("  %s to %s, %d days\n", sched.StartDate, sched.EndDate, len(sched.Dates()))
	return nil
}

func runScheduleEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	from, to, err := scheduleBounds()
	if err != nil {
		return err
	}
	sched, err := ctx.Views.UpdateSchedule(id, args[1], from, to, scheduleFlagSkipWeekends)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewScheduleOutput(sched))
	}
	ctx.CLIFormatter().Success("Schedule updated: " + sched.Title)
	return nil
}

func runScheduleDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return confirmAndApply(ctx.Views.RequestDeleteSchedule(id))
}

func runScheduleClear(cmd *cobra.Command, args []string) error {
	return confirmAndApply(ctx.Views.RequestClear(model.ModeSchedule))
}
