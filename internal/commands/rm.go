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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "todoq rm [common flags] <n>" }
func (c *RmCmd) NeedsBackend() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
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

	mgr.Delete(ctx, target.ID)
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
