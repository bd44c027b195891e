package instruction

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/lukaz-ai/lukaz-go/internal/cmd/base"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage prompt instructions"
}

func (c *Command) Help() string {
	return `Usage: lukaz instruction <subcommand> [options] [args]

  This command groups subcommands for the instruction templates that shape
  how prompt results are generated.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// apply copies the given instruction flags onto in.
func apply(flags base.InstructionFlags, set map[string]bool, in *lukaz.Instruction) {
	if set["context-description"] {
		in.ContextDescription = flags.ContextDescription
	}
	if set["context-sample"] {
		in.ContextSample = flags.ContextSample
	}
	if set["result-description"] {
		in.ResultDescription = flags.ResultDescription
	}
	if set["result-sample"] {
		in.ResultSample = flags.ResultSample
	}
	if set["include-docs"] {
		in.IncludeDocs = flags.IncludeDocs
	}
	if set["qty"] {
		in.Qty = flags.Qty
	}
}

// overlay applies the given instruction flags to current as it was read from
// the server. Fields this client does not model are sent back unchanged; the
// id is not sent.
func overlay(current *lukaz.Instruction, flags base.InstructionFlags, set map[string]bool) (lukaz.Instruction, error) {
	raw, err := json.Marshal(current)
	if err != nil {
		return lukaz.Instruction{}, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return lukaz.Instruction{}, fmt.Errorf("unexpected instruction: %w", err)
	}
	delete(fields, "id")

	for k, v := range flags.Fields(set) {
		b, err := json.Marshal(v)
		if err != nil {
			return lukaz.Instruction{}, err
		}
		fields[k] = b
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return lukaz.Instruction{}, err
	}
	return lukaz.Instruction{Raw: merged}, nil
}
