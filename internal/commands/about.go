package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoq/internal/about"
	"todoq/internal/config"
	"todoq/internal/exitcode"
	"todoq/internal/i18n"
	"todoq/internal/task"
)

func init() {
	Register(&AboutCmd{})
}

// AboutCmd implements the about command.
type AboutCmd struct{}

func (c *AboutCmd) Name() string       { return "about" }
func (c *AboutCmd) Aliases() []string  { return nil }
func (c *AboutCmd) Synopsis() string   { return "Print information about this program" }
func (c *AboutCmd) Usage() string      { return "todoq about" }
func (c *AboutCmd) NeedsBackend() bool { return false }

func (c *AboutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AboutCmd) Run(ctx context.Context, cfg *config.Config, repo task.Repository, args []string, out, errOut io.Writer) int {
	tr := i18n.NewTranslator(cfg.Locale, nil)
	page := about.Render(tr)

	fmt.Fprintf(out, "%s %s\n", page.Name, page.Version)
	fmt.Fprintln(out, page.Description)
	fmt.Fprintf(out, "source: %s\n", page.Source)
	fmt.Fprintf(out, "license: %s\n", page.License)
	for _, credit := range page.Credits {
		fmt.Fprintf(out, "  %s (%s)\n", credit.Name, credit.Role)
	}
	return exitcode.Success
}
