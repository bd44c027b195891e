package session

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Start a guest session"
}

func (c *Command) Help() string {
	return `Usage: lukaz session [options]

  Starts an anonymous guest session and prints its session ID.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("session", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 0 {
		return c.Usage("session takes no arguments")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	s, err := client.CreateGuest(ctx)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(s)
}
