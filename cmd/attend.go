package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/dates"
	apperrors "github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
	"github.com/daycheck/daycheck/internal/runtime"
)

// Attend command flags.
var (
	attendFlagMemo string
	attendFlagIn   string
	attendFlagOut  string
)

// attendCmd represents the attend command.
var attendCmd = &cobra.Command{
	Use:     "attend [DATE]",
	Aliases: []string{"a"},
	Short:   "Mark attendance for a day",
	Long: `Mark attendance for a day. With no argument, today is marked. The date
accepts natural language.

Examples:
  daycheck attend
  daycheck attend yesterday
  daycheck attend 2026-08-20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAttend,
}

var attendLogCmd = &cobra.Command{
	Use:   "log [DATE]",
	Short: "List attendance log entries, optionally for one date",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAttendLog,
}

var attendOutCmd = &cobra.Command{
	Use:   "out ID",
	Short: "Clock out of an attendance log entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttendOut,
}

var attendEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a log entry's memo and timestamps",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttendEdit,
}

var attendDeleteCmd = &cobra.Command{
	Use:   "delete ID|DATE",
	Short: "Delete one log entry, or every record for a date",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttendDelete,
}

var attendClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every attendance mark and log entry",
	Args:  cobra.NoArgs,
	RunE:  runAttendClear,
}

func init() {
	attendEditCmd.Flags().StringVar(&attendFlagMemo, "memo", "", "Memo text for the entry")
	attendEditCmd.Flags().StringVar(&attendFlagIn, "in", "", "Check-in time (HH:MM or 'YYYY-MM-DD HH:MM')")
	attendEditCmd.Flags().StringVar(&attendFlagOut, "out", "", "Clock-out time; empty clears it")

	attendCmd.AddCommand(attendLogCmd)
	attendCmd.AddCommand(attendOutCmd)
	attendCmd.AddCommand(attendEditCmd)
	attendCmd.AddCommand(attendDeleteCmd)
	attendCmd.AddCommand(attendClearCmd)
}

func runAttend(cmd *cobra.Command, args []string) error {
	input := ""
	if len(args) > 0 {
		input = args[0]
	}
	dateKey, err := dates.ParseInput(input, ctx.State.Now())
	if err != nil {
		return apperrors.NewValidationField("date", "could not understand the date",
			"Try a natural phrase like 'yesterday' or a YYYY-MM-DD date")
	}

	entry, err := ctx.Views.MarkAttendance(dateKey)
	if err != nil {
		if apperrors.IsConflict(err) {
			ctx.CLIFormatter().Warning(runtime.FormatError(err))
			return nil
		}
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewLogOutput(entry))
	}
	ctx.CLIFormatter().PrintAttendanceMarked(entry)
	return nil
}

func runAttendLog(cmd *cobra.Command, args []string) error {
	entries := ctx.State.SortedLog()
	if len(args) > 0 {
		dateKey, err := dates.ParseInput(args[0], ctx.State.Now())
		if err != nil {
			return err
		}
		entries = ctx.State.LogsForDate(dateKey)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewLogsResponse(entries))
	}
	ctx.CLIFormatter().PrintAttendanceLog(entries)
	return nil
}

func runAttendOut(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	entry, err := ctx.Views.ClockOut(id)
	if err != nil {
		if apperrors.IsConflict(err) {
			ctx.CLIFormatter().Warning(runtime.FormatError(err))
			return nil
		}
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewLogOutput(entry))
	}
	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Clocked out of %s", entry.Date))
	cli.Printf("  Out: %s\n", output.FormatTime(entry.ClockedOutAt))
	return nil
}

func runAttendEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	current := findLog(id)
	if current == nil {
		return apperrors.ErrNotFound
	}

	memo := current.Memo
	if cmd.Flags().Changed("memo") {
		memo = attendFlagMemo
	}

	checkedIn := current.CheckedInAt
	if cmd.Flags().Changed("in") {
		checkedIn, err = parseStamp(current.Date, attendFlagIn)
		if err != nil {
			return err
		}
	}

	clockedOut := current.ClockedOutAt
	if cmd.Flags().Changed("out") {
		if attendFlagOut == "" {
			clockedOut = time.Time{}
		} else {
			clockedOut, err = parseStamp(current.Date, attendFlagOut)
			if err != nil {
				return err
			}
		}
	}

	entry, err := ctx.Views.UpdateAttendanceLog(id, memo, checkedIn, clockedOut)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewLogOutput(entry))
	}
	ctx.CLIFormatter().Success("Log entry updated")
	return nil
}

func runAttendDelete(cmd *cobra.Command, args []string) error {
	if dates.IsKey(args[0]) {
		return confirmAndApply(ctx.Views.RequestDeleteAttendance(args[0]))
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return confirmAndApply(ctx.Views.RequestDeleteLog(id))
}

func runAttendClear(cmd *cobra.Command, args []string) error {
	return confirmAndApply(ctx.Views.RequestClear(model.ModeAttendance))
}

func findLog(id int64) *model.AttendanceLog {
	for _, e := range ctx.State.AttendanceLog {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// parseID parses a numeric record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationField("id", "not a numeric id",
			"Use the ID column from the list output")
	}
	return id, nil
}

// parseStamp parses a timestamp flag. A bare HH:MM is anchored to the entry's
// date; otherwise the full "YYYY-MM-DD HH:MM" layout is expected.
func parseStamp(dateKey, value string) (time.Time, error) {
	if t, err := time.ParseInLocation("15:04", value, time.Local); err == nil {
		day, derr := dates.Parse(dateKey)
		if derr != nil {
			return time.Time{}, derr
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		return time.Time{}, apperrors.NewValidationField("time", "could not parse the time",
			"Use HH:MM or 'YYYY-MM-DD HH:MM'")
	}
	return t, nil
}
