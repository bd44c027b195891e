package user

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Show the current user and quota"
}

func (c *Command) Help() string {
	return `Usage: lukaz user [options]

  Prints the user owning the API key, including remaining quota.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("user", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 0 {
		return c.Usage("user takes no arguments")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	u, err := client.GetUser(ctx)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(u)
}
