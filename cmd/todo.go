package cmd

import (
	"github.com/spf13/cobra"

	"github.com/daycheck/daycheck/internal/app"
	"github.com/daycheck/daycheck/internal/model"
	"github.com/daycheck/daycheck/internal/output"
)

// Todo command flags.
var (
	todoFlagCompleted bool
	todoFlagDate      string
)

// todoCmd represents the todo command.
var todoCmd = &cobra.Command{
	Use:     "todo",
	Aliases: []string{"t"},
	Short:   "Manage todos",
	RunE:    runTodoList,
}

var todoAddCmd = &cobra.Command{
	Use:   "add TEXT",
	Short: "Add an active todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoAdd,
}

var todoEditCmd = &cobra.Command{
	Use:   "edit ID TEXT",
	Short: "Replace an active todo's text",
	Args:  cobra.ExactArgs(2),
	RunE:  runTodoEdit,
}

var todoDoneCmd = &cobra.Command{
	Use:     "done ID",
	Aliases: []string{"complete"},
	Short:   "Mark a todo as completed",
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoDone,
}

var todoRestoreCmd = &cobra.Command{
	Use:   "restore ID",
	Short: "Move a completed item back to the active list",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoRestore,
}

var todoDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a todo or completed item",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDelete,
}

var todoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every item on the selected tab",
	Args:  cobra.NoArgs,
	RunE:  runTodoClear,
}

func init() {
	todoCmd.PersistentFlags().BoolVar(&todoFlagCompleted, "completed", false,
		"Operate on the completed tab")
	todoCmd.Flags().StringVar(&todoFlagDate, "date", "", "Filter by date (YYYY-MM-DD)")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoEditCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoRestoreCmd)
	todoCmd.AddCommand(todoDeleteCmd)
	todoCmd.AddCommand(todoClearCmd)
}

func todoTab() model.TodoTab {
	if todoFlagCompleted {
		return model.TabCompleted
	}
	return model.TabActive
}

func runTodoList(cmd *cobra.Command, args []string) error {
	todos := ctx.State.VisibleTodos(app.Filters{TodoDate: todoFlagDate}, todoTab())
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTodosResponse(todos))
	}
	ctx.CLIFormatter().PrintTodos(todos)
	return nil
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	todo, err := ctx.Views.AddTodo(args[0])
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTodoOutput(todo))
	}
	ctx.CLIFormatter().Success("Todo added: " + todo.Text)
	return nil
}

func runTodoEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := ctx.Views.StartTodoEdit(id); err != nil {
		return err
	}
	todo, err := ctx.Views.SaveTodoEdit(args[1])
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTodoOutput(todo))
	}
	ctx.CLIFormatter().Success("Todo updated")
	return nil
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	todo, err := ctx.Views.CompleteTodo(id)
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTodoOutput(todo))
	}
	ctx.CLIFormatter().Success("Completed: " + todo.Text)
	return nil
}

func runTodoRestore(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	todo, err := ctx.Views.RestoreTodo(id)
	if err != nil {
		return err
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewTodoOutput(todo))
	}
	ctx.CLIFormatter().Success("Restored: " + todo.Text)
	return nil
}

func runTodoDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return confirmAndApply(ctx.Views.RequestDeleteTodo(id))
}

func runTodoClear(cmd *cobra.Command, args []string) error {
	ctx.Views.SwitchTab(todoTab())
	return confirmAndApply(ctx.Views.RequestClear(model.ModeTodo))
}
