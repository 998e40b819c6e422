package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todoq/internal/config"
	"todoq/internal/exitcode"
	"todoq/internal/i18n"
	"todoq/internal/output"
	"todoq/internal/task"
	"todoq/internal/tasklist"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command: it selects the task at the
// given position and prints its details.
type ShowCmd struct{}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return nil }
func (c *ShowCmd) Synopsis() string   { return "Show one task's details" }
func (c *ShowCmd) Usage() string      { return "todoq show [common flags] <n>" }
func (c *ShowCmd) NeedsBackend() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
	n, err := parseTaskNum(args)
	if err != nil {
		if errors.Is(err, ErrTaskNumRequired) {
			fmt.Fprintln(errOut, "error: task number required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	mgr := tasklist.New(repo, nil)
	mgr.LoadAll(ctx)
	if err := mgr.Err(); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	target, err := taskByNumber(mgr.Items(), n)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	mgr.Select(target.ID)
	selected, ok := mgr.SelectedItem()
	if !ok {
		// Selection is a reference, not a guarantee; a vanished record
		// reads as nothing selected.
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", n)
		return exitcode.UserError
	}

	tr := i18n.NewTranslator(cfg.Locale, nil)
	output.FormatDetail(out, selected, tr)
	return exitcode.Success
}
