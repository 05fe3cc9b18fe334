package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/app"
	"github.com/daycheck/daycheck/internal/dates"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
)

// Counter command flags.
var (
	counterFlagTarget string
	counterFlagDate   string
)

// counterCmd represents the counter command.
var counterCmd = &cobra.Command{
	Use:     "counter",
	Aliases: []string{"c"},
	Short:   "Manage day counters",
	RunE:    runCounterList,
}

var counterAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a day counter toward a target date",
	Long: `Add a day counter toward a target date. Past dates count upward.

Examples:
  daycheck counter add "Visa renewal" --target 2026-09-15
  daycheck counter add "Started running" --target "3 weeks ago"`,
	Args: cobra.ExactArgs(1),
	RunE: runCounterAdd,
}

var counterEditCmd = &cobra.Command{
	Use:   "edit ID TITLE",
	Short: "Replace a counter's title and target date",
	Args:  cobra.ExactArgs(2),
	RunE:  runCounterEdit,
}

var counterDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a day counter",
	Args:  cobra.ExactArgs(1),
	RunE:  runCounterDelete,
}

var counterClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every day counter",
	Args:  cobra.NoArgs,
	RunE:  runCounterClear,
}

func init() {
	for _, c := range []*cobra.Command{counterAddCmd, counterEditCmd} {
		c.Flags().StringVar(&counterFlagTarget, "target", "", "Target date")
	}
	counterCmd.Flags().StringVar(&counterFlagDate, "date", "", "Filter by target date (YYYY-MM-DD)")

	counterCmd.AddCommand(counterAddCmd)
	counterCmd.AddCommand(counterEditCmd)
	counterCmd.AddCommand(counterDeleteCmd)
	counterCmd.AddCommand(counterClearCmd)
}

func counterTarget() (string, error) {
	return dates.ParseInput(counterFlagTarget, ctx.State.Now())
}

func runCounterList(cmd *cobra.Command, args []string) error {
	counters := ctx.State.VisibleCounters(app.Filters{CounterDate: counterFlagDate})
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewCountersResponse(counters, ctx.State.DaysUntil))
	}
	ctx.CLIFormatter().PrintCounters(counters, ctx.State.DaysUntil)
	return nil
}

func runCounterAdd(cmd *cobra.Command, args []string) error {
	target, err := counterTarget()
	if err != nil {
		return err
	}
	counter, err := ctx.Views.CreateCounter(args[0], target)
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewCounterOutput(counter, ctx.State.DaysUntil(counter)))
	}
	cli := ctx.CLIFormatter()
	cli.Success("Counter created: " + counter.Title)
	cli.Printf("  %s: %s\n", counter.TargetDate, output.DaysText(ctx.State.DaysUntil(counter)))
	return nil
}

func runCounterEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	target, err := counterTarget()
	if err != nil {
		return err
	}
	counter, err := ctx.Views.UpdateCounter(id, args[1], target)
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewCounterOutput(counter, ctx.State.DaysUntil(counter)))
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Counter updated: %s (%s)",
		counter.Title, output.DaysText(ctx.State.DaysUntil(counter))))
	return nil
}

func runCounterDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return confirmAndApply(ctx.Views.RequestDeleteCounter(id))
}

func runCounterClear(cmd *cobra.Command, args []string) error {
	return confirmAndApply(ctx.Views.RequestClear(model.ModeCounter))
}
