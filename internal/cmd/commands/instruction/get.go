package instruction

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show an instruction"
}

func (c *GetCommand) Help() string {
	return `Usage: lukaz instruction get [options] INSTRUCTION_ID` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("instruction get", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		return c.Usage("expected exactly one instruction ID")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	in, err := client.GetInstruction(ctx, flags.Arg(0))
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(in)
}
