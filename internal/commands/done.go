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
	"todoq/internal/task"
	"todoq/internal/tasklist"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: it flips the completion state
// of the task at the given position.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string      { return "todoq done [common flags] <n>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
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

	mgr.Toggle(ctx, target.ID)
	if err := mgr.Err(); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		tr := i18n.NewTranslator(cfg.Locale, nil)
		fmt.Fprintln(out, tr.T("ok"))
	}
	return exitcode.Success
}
