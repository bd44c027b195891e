package prompt

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete one or more prompts"
}

func (c *DeleteCommand) Help() string {
	return `Usage: lukaz prompt delete [options] PROMPT_ID...` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("prompt delete", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() == 0 {
		return c.Usage("expected at least one prompt ID")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	return c.PrintEach(base.EachID("prompt", flags.Args(), func(id string) (interface{}, error) {
		return client.DeletePrompt(ctx, id)
	}))
}
