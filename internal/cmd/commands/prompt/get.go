package prompt

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type GetCommand struct {
	*base.Command

	flagBoard string
}

func (c *GetCommand) Synopsis() string {
	return "Show a prompt"
}

func (c *GetCommand) Help() string {
	return `Usage: lukaz prompt get [options] PROMPT_ID` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("prompt get", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagBoard, "board", "",
		"Read the prompt through its board.")
	return f
}

func (c *GetCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		return c.Usage("expected exactly one prompt ID")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	var p *lukaz.Prompt
	if c.flagBoard != "" {
		p, err = client.GetBoardPrompt(ctx, c.flagBoard, flags.Arg(0))
	} else {
		p, err = client.GetPrompt(ctx, flags.Arg(0))
	}
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(p)
}
