package file

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Remove documents from a board"
}

func (c *DeleteCommand) Help() string {
	return `Usage: lukaz file delete [options] BOARD_ID FILE_NAME...

  Removes each named document from the board.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("file delete", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() < 2 {
		return c.Usage("expected a board ID and at least one file name")
	}
	board := flags.Arg(0)

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	return c.PrintEach(base.EachID("file", flags.Args()[1:], func(name string) (interface{}, error) {
		return client.DeleteFile(ctx, board, name)
	}))
}
