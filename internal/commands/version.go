package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoq/internal/about"
	"todoq/internal/config"
	"todoq/internal/exitcode"
	"todoq/internal/task"
)

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string       { return "version" }
func (c *VersionCmd) Aliases() []string  { return nil }
func (c *VersionCmd) Synopsis() string   { return "Print version" }
func (c *VersionCmd) Usage() string      { return "todoq version" }
func (c *VersionCmd) NeedsBackend() bool { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "todoq %s\n", about.Version)
	return exitcode.Success
}
