// Package cmd provides the CLI commands for Daycheck.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/logging"
	"github.com/daycheck/daycheck/internal/output"
	"github.com/daycheck/daycheck/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagYes    bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "daycheck",
	Short: "A personal day tracker for attendance, schedules, todos, memos and day counters",
	Long: `Daycheck keeps five kinds of daily records in one place: attendance
marks, date-ranged schedules, todos, memos and day counters, all viewed
against a year calendar.

Examples:
  daycheck attend
  daycheck schedule add "Conference" --from 2026-06-03 --to 2026-06-07 --skip-weekends
  daycheck todo add "Write trip report"
  daycheck counter add "Visa renewal" --target 2026-09-15
  daycheck calendar --mode schedule`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		} else {
			logging.Init(logging.DefaultConfig())
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show today's standing
		return runToday(cmd, args)
	},
}

// runToday summarizes the current day across all modes.
func runToday(cmd *cobra.Command, args []string) error {
	state := ctx.State
	today := state.Today()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"date":      today,
			"attended":  state.IsAttended(today),
			"schedules": output.NewSchedulesResponse(state.SchedulesOn(today)).Schedules,
			"todos":     output.NewTodosResponse(state.TodosCreatedOn(today)).Todos,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Today: " + today)
	if state.IsAttended(today) {
		cli.Success("Attendance marked")
	} else {
		cli.Muted("Not attended yet. Run 'daycheck attend' to mark.")
	}
	for _, s := range state.SchedulesOn(today) {
		cli.Printf("  %s\n", output.ScheduleLabel(s, today))
	}
	if todos := state.TodosCreatedOn(today); len(todos) > 0 {
		cli.PrintTodos(todos)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false,
		"Skip confirmation prompts")

	// Add commands
	rootCmd.AddCommand(attendCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(memoCmd)
	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("daycheck %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.Formatter.JSON(&output.ErrorResponse{
			Status:  "error",
			Error:   err.Error(),
			Message: runtime.Suggestion(err),
		})
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
		if hint := runtime.Suggestion(err); hint != "" {
			os.Stderr.WriteString("  " + hint + "\n")
		}
	}
	os.Exit(1)
}
