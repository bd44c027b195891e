package prompt

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type UpdateCommand struct {
	*base.Command

	flagFeedback int
	flagSaved    bool
	flagVisible  bool
	flagResult   string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a prompt"
}

func (c *UpdateCommand) Help() string {
	return `Usage: lukaz prompt update [options] PROMPT_ID

  Updates the given fields of a prompt. Fields that are not given are left
  unchanged.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("prompt update", flag.ContinueOnError))
	c.ClientFlags(f)

	f.IntVar(&c.flagFeedback, "feedback", lukaz.FeedbackNone,
		"Feedback on the result: 0 for none, 1 for positive.")
	f.BoolVar(&c.flagSaved, "saved", false, "Mark the prompt as saved.")
	f.BoolVar(&c.flagVisible, "visible", false, "Make the prompt visible.")
	f.StringVar(&c.flagResult, "result", "", "Replace the result text.")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() != 1 {
		return c.Usage("expected exactly one prompt ID")
	}

	set := base.SetFlags(flags)
	var body lukaz.UpdatePrompt
	if set["feedback"] {
		body.Feedback = &c.flagFeedback
	}
	if set["saved"] {
		body.Saved = &c.flagSaved
	}
	if set["visible"] {
		body.Visible = &c.flagVisible
	}
	if set["result"] {
		body.Result = &c.flagResult
	}
	if body == (lukaz.UpdatePrompt{}) {
		return c.Usage("nothing to update")
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	ack, err := client.UpdatePrompt(ctx, flags.Arg(0), body)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(ack)
}
