package prompt

import (
	"github.com/mitchellh/cli"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Submit and manage prompts"
}

func (c *Command) Help() string {
	return `Usage: lukaz prompt <subcommand> [options] [args]

  This command groups subcommands for submitting prompts to a board and for
  working with their results.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
