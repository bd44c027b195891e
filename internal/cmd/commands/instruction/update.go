package instruction

import (
	"flag"
	"fmt"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type UpdateCommand struct {
	*base.Command

	flagInstruction base.InstructionFlags
}

func (c *UpdateCommand) Synopsis() string {
	return "Update an instruction"
}

func (c *UpdateCommand) Help() string {
	return `Usage: lukaz instruction update [options] INSTRUCTION_ID

  Reads the instruction, applies the given fields and writes it back.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("instruction update", flag.ContinueOnError))
	c.ClientFlags(f)
	c.flagInstruction.Register(f)
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		return c.Usage("expected exactly one instruction ID")
	}
	set := base.SetFlags(flags)
	if !c.flagInstruction.Any(set) {
		return c.Usage("nothing to update")
	}
	if err := c.flagInstruction.Validate(); err != nil {
		return c.Fail(err)
	}
	id := flags.Arg(0)

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	current, err := client.GetInstruction(ctx, id)
	if err != nil {
		return c.Fail(fmt.Errorf("failed to read current instruction: %w", err))
	}
	body, err := overlay(current, c.flagInstruction, set)
	if err != nil {
		return c.Fail(err)
	}

	ack, err := client.UpdateInstruction(ctx, id, body)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(ack)
}
