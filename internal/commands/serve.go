package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"todoq/internal/config"
	"todoq/internal/exitcode"
	"todoq/internal/task"
	"todoq/internal/tasklist"
	"todoq/internal/web"
)

const defaultServeAddr = ":8175"

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command: it exposes the task list
// over HTTP until interrupted.
type ServeCmd struct {
	addr string
}

func (c *ServeCmd) Name() string       { return "serve" }
func (c *ServeCmd) Aliases() []string  { return nil }
func (c *ServeCmd) Synopsis() string   { return "Serve the task list over HTTP" }
func (c *ServeCmd) Usage() string      { return "todoq serve [common flags] [--addr <addr>]" }
func (c *ServeCmd) NeedsBackend() bool { return true }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", defaultServeAddr, "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	mgr := tasklist.New(repo, nil)
	srv := web.NewServer(mgr, logger)

	if !cfg.Quiet {
		fmt.Fprintf(out, "listening on %s\n", c.addr)
	}
	if err := srv.Run(c.addr); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
