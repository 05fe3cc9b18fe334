package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/daycheck/daycheck/internal/app"
)

// confirmAndApply resolves a pending confirmation: with --yes it applies
// immediately, otherwise it prompts on the terminal. Declining cancels the
// pending action.
func confirmAndApply(conf *app.Confirmation) error {
	if conf == nil {
		return nil
	}
	if flagYes {
		return ctx.Views.Confirm(conf.Token)
	}

	cli := ctx.CLIFormatter()
	cli.Title(conf.Title)
	cli.Println(conf.Message)
	cli.Print("Proceed? [y/N] ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		ctx.Views.CancelPending()
		return err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		ctx.Views.CancelPending()
		cli.Muted("Cancelled.")
		return nil
	}
	return ctx.Views.Confirm(conf.Token)
}
