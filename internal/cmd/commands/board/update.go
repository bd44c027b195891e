package board

import (
	"flag"
	"fmt"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type UpdateCommand struct {
	*base.Command

	flagTitle       string
	flagDescription string
	flagNotify      bool
	flagOptions     base.KeyValueFlag
	flagRoles       base.KeyValueFlag
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a board"
}

func (c *UpdateCommand) Help() string {
	return `Usage: lukaz board update [options] BOARD_ID

  Updates the given fields of a board. Fields that are not given are left
  unchanged. Options given with -option are merged into the board's current
  options. Roles are given as email=level, where level is viewer, editor,
  owner or the numeric role.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("board update", flag.ContinueOnError))
	c.ClientFlags(f)

	c.flagOptions = base.KeyValueFlag{}
	c.flagRoles = base.KeyValueFlag{}
	f.StringVar(&c.flagTitle, "title", "", "New board title.")
	f.StringVar(&c.flagDescription, "description", "", "New board description.")
	f.BoolVar(&c.flagNotify, "notify", false, "Notify users whose role changed.")
	f.Var(c.flagOptions, "option", "Board option as key=value. Repeatable.")
	f.Var(c.flagRoles, "role", "User role as email=level. Repeatable.")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		return c.Usage("expected exactly one board ID")
	}
	id := flags.Arg(0)

	set := base.SetFlags(flags)
	var body lukaz.UpdateBoard
	if set["title"] {
		body.Title = &c.flagTitle
	}
	if set["description"] {
		body.Description = &c.flagDescription
	}
	if set["notify"] {
		body.Notify = &c.flagNotify
	}

	roles, err := parseRoles(c.flagRoles)
	if err != nil {
		return c.Fail(err)
	}
	body.Roles = roles

	changes, err := decodeOptions(c.flagOptions)
	if err != nil {
		return c.Fail(err)
	}

	if !set["title"] && !set["description"] && !set["notify"] &&
		len(roles) == 0 && len(changes) == 0 {
		return c.Usage("nothing to update")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	if len(changes) > 0 {
		current, err := client.GetBoard(ctx, id)
		if err != nil {
			return c.Fail(fmt.Errorf("failed to read current options: %w", err))
		}
		body.Options = mergeOptions(current.Options, changes)
	}

	ack, err := client.UpdateBoard(ctx, id, body)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(ack)
}
