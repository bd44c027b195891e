package prompt

import (
	"flag"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
)

type AudioCommand struct {
	*base.Command
}

func (c *AudioCommand) Synopsis() string {
	return "Get an audio reading of a prompt result"
}

func (c *AudioCommand) Help() string {
	return `Usage: lukaz prompt audio [options] PROMPT_ID

  Asks the platform to synthesize the prompt's result and prints the URL of
  the audio file.` +
		c.Flags().Help()
}

func (c *AudioCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("prompt audio", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *AudioCommand) Run(args []string) int {
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

	audio, err := client.GetAudio(ctx, flags.Arg(0))
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(audio)
}
