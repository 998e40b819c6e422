package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoq/internal/config"
	"todoq/internal/exitcode"
	"todoq/internal/i18n"
	"todoq/internal/task"
	"todoq/internal/tasklist"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "todoq add [common flags] <title...>" }
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	mgr := tasklist.New(repo, nil)
	mgr.Create(ctx, task.CreateInput{Title: title})
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
