package board

import (
	"github.com/mitchellh/cli"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage boards"
}

func (c *Command) Help() string {
	return `Usage: lukaz board <subcommand> [options] [args]

  This command groups subcommands for listing, reading, creating, updating
  and deleting boards.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
