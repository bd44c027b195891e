package board

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List the boards of the current user"
}

func (c *ListCommand) Help() string {
	return `Usage: lukaz board list [options]

  Lists every board the API key has access to.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("board list", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *ListCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 0 {
		return c.Usage("board list takes no arguments")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	boards, err := client.GetBoards(ctx)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(boards)
}
