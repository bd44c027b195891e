package board

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type CreateCommand struct {
	*base.Command

	flagTitle       string
	flagDescription string
	flagOptions     base.KeyValueFlag
}

func (c *CreateCommand) Synopsis() string {
	return "Create a board"
}

func (c *CreateCommand) Help() string {
	return `Usage: lukaz board create -title=TITLE [options]

  Creates a board owned by the current user. Board options are given as
  repeated -option flags, for example:

      lukaz board create -title=Research -option free=true -option upload=true` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("board create", flag.ContinueOnError))
	c.ClientFlags(f)

	c.flagOptions = base.KeyValueFlag{}
	f.StringVar(&c.flagTitle, "title", "", "(Required) Board title.")
	f.StringVar(&c.flagDescription, "description", "", "Board description.")
	f.Var(c.flagOptions, "option",
		"Board option as key=value. Boolean keys: prompt, docs, free, public, upload. Repeatable.")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 0 {
		return c.Usage("board create takes no arguments")
	}
	if c.flagTitle == "" {
		return c.Usage("title flag is required")
	}

	opts, err := decodeOptions(c.flagOptions)
	if err != nil {
		return c.Fail(err)
	}
	body := lukaz.CreateBoard{
		Title:       c.flagTitle,
		Description: c.flagDescription,
		Options:     opts,
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	ack, err := client.CreateBoard(ctx, body)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(ack)
}
