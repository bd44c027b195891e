package prompt

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List prompts"
}

func (c *ListCommand) Help() string {
	return `Usage: lukaz prompt list [options] [BOARD_ID]

  Lists the prompts of the current user, or of one board when BOARD_ID is
  given.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("prompt list", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *ListCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() > 1 {
		return c.Usage("expected at most one board ID")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	var prompts []lukaz.Prompt
	if flags.NArg() == 1 {
		prompts, err = client.ListBoardPrompts(ctx, flags.Arg(0))
	} else {
		prompts, err = client.ListPrompts(ctx)
	}
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(prompts)
}
