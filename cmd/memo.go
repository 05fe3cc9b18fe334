package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/app"
	apperrors "github.com/daycheck/daycheck/internal/errors"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
)

// Memo command flags.
var (
	memoFlagTitle   string
	memoFlagSearch  string
	memoFlagDate    string
	memoFlagContent string
)

// memoCmd represents the memo command.
var memoCmd = &cobra.Command{
	Use:     "memo",
	Aliases: []string{"m"},
	Short:   "Manage memos",
	RunE:    runMemoList,
}

var memoAddCmd = &cobra.Command{
	Use:   "add CONTENT",
	Short: "Add a memo",
	Long: `Add a memo. Without --title the memo gets a numbered default title.

Examples:
  daycheck memo add "Parking spot B14" --title "Airport"
  daycheck memo add "Call the landlord about the lease"`,
	Args: cobra.ExactArgs(1),
	RunE: runMemoAdd,
}

var memoShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a memo's full content",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoShow,
}

var memoEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a memo's title and content",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoEdit,
}

var memoDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a memo",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoDelete,
}

var memoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every memo",
	Args:  cobra.NoArgs,
	RunE:  runMemoClear,
}

func init() {
	memoAddCmd.Flags().StringVar(&memoFlagTitle, "title", "", "Memo title")
	memoEditCmd.Flags().StringVar(&memoFlagTitle, "title", "", "New title")
	memoEditCmd.Flags().StringVar(&memoFlagContent, "content", "", "New content")
	memoCmd.Flags().StringVar(&memoFlagSearch, "search", "", "Filter by title or content substring")
	memoCmd.Flags().StringVar(&memoFlagDate, "date", "", "Filter by creation date (YYYY-MM-DD)")

	memoCmd.AddCommand(memoAddCmd)
	memoCmd.AddCommand(memoShowCmd)
	memoCmd.AddCommand(memoEditCmd)
	memoCmd.AddCommand(memoDeleteCmd)
	memoCmd.AddCommand(memoClearCmd)
}

func runMemoList(cmd *cobra.Command, args []string) error {
	memos := ctx.State.VisibleMemos(app.Filters{
		MemoDate:   memoFlagDate,
		MemoSearch: memoFlagSearch,
	})
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewMemosResponse(memos))
	}
	ctx.CLIFormatter().PrintMemos(memos)
	return nil
}

func runMemoAdd(cmd *cobra.Command, args []string) error {
	memo, err := ctx.Views.CreateMemo(memoFlagTitle, args[0])
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewMemoOutput(memo))
	}
	ctx.CLIFormatter().Success("Memo saved: " + memo.Title)
	return nil
}

func runMemoShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	memo := ctx.State.FindMemo(id)
	if memo == nil {
		return apperrors.ErrNotFound
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewMemoOutput(memo))
	}
	cli := ctx.CLIFormatter()
	cli.Title(memo.Title)
	cli.Println(memo.Content)
	return nil
}

func runMemoEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	sess, err := ctx.Views.OpenMemoEditor(id)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("title") {
		sess.DraftTitle = memoFlagTitle
	}
	if cmd.Flags().Changed("content") {
		sess.DraftContent = memoFlagContent
	}

	if !sess.Dirty() {
		if conf := ctx.Views.CloseMemoEditor(); conf != nil {
			return confirmAndApply(conf)
		}
		ctx.CLIFormatter().Muted("No changes.")
		return nil
	}
	if err := ctx.Views.SaveMemoEdit(); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Memo updated")
	return nil
}

func runMemoDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return confirmAndApply(ctx.Views.RequestDeleteMemo(id))
}

func runMemoClear(cmd *cobra.Command, args []string) error {
	return confirmAndApply(ctx.Views.RequestClear(model.ModeMemo))
}
