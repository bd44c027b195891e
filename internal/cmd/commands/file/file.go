package file

import (
	"github.com/mitchellh/cli"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage board documents"
}

func (c *Command) Help() string {
	return `Usage: lukaz file <subcommand> [options] [args]

  This command groups subcommands for uploading documents to a board and
  removing them.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
