package commands

import (
	"context"
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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List all tasks" }
func (c *ListCmd) Usage() string      { return "todoq list [common flags]" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
	mgr := tasklist.New(repo, nil)
	mgr.LoadAll(ctx)
	if err := mgr.Err(); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	tr := i18n.NewTranslator(cfg.Locale, nil)
	items := mgr.Items()
	if len(items) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, tr.T("list.empty"))
		}
		return exitcode.Success
	}

	for i, t := range items {
		output.FormatTask(out, i+1, t, tr)
	}
	if !cfg.Quiet {
		output.FormatCounts(out, tr, mgr.CompletedCount(), mgr.PendingCount())
	}
	return exitcode.Success
}
