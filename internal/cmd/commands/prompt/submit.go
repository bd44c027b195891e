package prompt

import (
	"flag"
	"strings"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type SubmitCommand struct {
	*base.Command

	flagTranslate   bool
	flagModel       string
	flagInstruction base.InstructionFlags
}

func (c *SubmitCommand) Synopsis() string {
	return "Submit a prompt to a board"
}

func (c *SubmitCommand) Help() string {
	return `Usage: lukaz prompt submit [options] BOARD_ID PROMPT...

  Submits PROMPT to the board and prints the generated result. Remaining
  arguments are joined with spaces. Any of the instruction flags sends an
  inline instruction with the prompt.` +
		c.Flags().Help()
}

func (c *SubmitCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("prompt submit", flag.ContinueOnError))
	c.ClientFlags(f)

	f.BoolVar(&c.flagTranslate, "translate", false,
		"Translate the result to the language of the prompt.")
	f.StringVar(&c.flagModel, "model", "",
		"Generation model. Defaults to the board's model.")
	c.flagInstruction.Register(f)
	return f
}

func (c *SubmitCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return c.Usage("error parsing flags: %v", err)
	}
	if flags.NArg() < 2 {
		return c.Usage("expected a board ID and a prompt")
	}
	if err := c.flagInstruction.Validate(); err != nil {
		return c.Fail(err)
	}

	body := lukaz.PromptBody{
		Prompt:          strings.Join(flags.Args()[1:], " "),
		TranslateResult: c.flagTranslate,
		Model:           c.flagModel,
	}
	if c.flagInstruction.Any(base.SetFlags(flags)) {
		i := c.flagInstruction
		body.Instruction = &lukaz.PromptInstruction{
			ContextDescription: i.ContextDescription,
			ContextSample:      i.ContextSample,
			ResultDescription:  i.ResultDescription,
			ResultSample:       i.ResultSample,
			IncludeDocs:        i.IncludeDocs,
			Qty:                i.Qty,
		}
	}

	client, err := c.NewClient()
	if err != nil {
		return c.Fail(err)
	}

	ctx, cancel := c.Context()
	defer cancel()

	result, err := client.SubmitPrompt(ctx, flags.Arg(0), body)
	if err != nil {
		return c.Fail(err)
	}
	return c.Print(result)
}
