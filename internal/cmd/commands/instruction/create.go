package instruction

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type CreateCommand struct {
	*base.Command

	flagInstruction base.InstructionFlags
}

func (c *CreateCommand) Synopsis() string {
	return "Create an instruction"
}

func (c *CreateCommand) Help() string {
	return `Usage: lukaz instruction create [options]

  Creates an instruction and prints its ID.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("instruction create", flag.ContinueOnError))
	c.ClientFlags(f)
	c.flagInstruction.Register(f)
	return f
}

func (c *CreateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 0 {
		return c.Usage("instruction create takes no arguments")
	}
	if err := c.flagInstruction.Validate(); err != nil {
		return c.Fail(err)
	}

	var body lukaz.Instruction
	apply(c.flagInstruction, base.SetFlags(flags), &body)

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	id, err := client.CreateInstruction(ctx, body)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(id)
}
