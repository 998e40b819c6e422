package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoq/internal/config"
	"todoq/internal/exitcode"
	"todoq/internal/task"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoq help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todoq                          List all tasks
  todoq list [common flags]
  todoq add [common flags] <title...>
  todoq done [common flags] <n>  Toggle task n's completion
  todoq rm [common flags] <n>
  todoq show [common flags] <n>
  todoq serve [common flags] [--addr <addr>]
  todoq about
  todoq login                    Authenticate the googletasks backend
  todoq logout
  todoq help
  todoq version

Common flags:
  --config <dir>     Override config directory
  --backend <name>   Storage backend: memory, local or googletasks
  --locale <tag>     Output locale (e.g. en, de, es)
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`
