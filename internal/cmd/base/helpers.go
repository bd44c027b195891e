package base

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
)

// SetFlags returns the names of the flags given on the command line.
func SetFlags(f *FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	return set
}

// EachID runs fn for every id. Results of the calls that succeed are keyed by
// id. Every failure is collected, so one bad id does not stop the rest.
func EachID(kind string, ids []string, fn func(id string) (interface{}, error)) (map[string]interface{}, error) {
	var result *multierror.Error
	out := make(map[string]interface{}, len(ids))

	for _, id := range ids {
		v, err := fn(id)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s %q: %w", kind, id, err))
			continue
		}
		out[id] = v
	}

	return out, result.ErrorOrNil()
}

// InstructionFlags are the flags describing how a result is generated.
type InstructionFlags struct {
	ContextDescription string
	ContextSample      string
	ResultDescription  string
	ResultSample       string
	IncludeDocs        bool
	Qty                int
}

var instructionFlagNames = []string{
	"context-description", "context-sample", "result-description",
	"result-sample", "include-docs", "qty",
}

// Register adds the instruction flags to f.
func (i *InstructionFlags) Register(f *FlagSet) {
	f.StringVar(&i.ContextDescription, "context-description", "",
		"Describes the context the model is given.")
	f.StringVar(&i.ContextSample, "context-sample", "",
		"Sample of the context.")
	f.StringVar(&i.ResultDescription, "result-description", "",
		"Describes the expected result.")
	f.StringVar(&i.ResultSample, "result-sample", "",
		"Sample of the expected result.")
	f.BoolVar(&i.IncludeDocs, "include-docs", false,
		"Include the board documents in the context.")
	f.IntVar(&i.Qty, "qty", 0,
		"Number of results to generate.")
}

// Any reports whether any instruction flag was given.
func (i *InstructionFlags) Any(set map[string]bool) bool {
	for _, name := range instructionFlagNames {
		if set[name] {
			return true
		}
	}
	return false
}

// Fields returns the given flags keyed by their JSON field name, for example
// context-description as contextDescription.
func (i *InstructionFlags) Fields(set map[string]bool) map[string]interface{} {
	values := map[string]interface{}{
		"context-description": i.ContextDescription,
		"context-sample":      i.ContextSample,
		"result-description":  i.ResultDescription,
		"result-sample":       i.ResultSample,
		"include-docs":        i.IncludeDocs,
		"qty":                 i.Qty,
	}

	out := make(map[string]interface{})
	for _, name := range instructionFlagNames {
		if set[name] {
			out[strcase.ToLowerCamel(name)] = values[name]
		}
	}
	return out
}

// Validate checks the values that can be checked locally.
func (i *InstructionFlags) Validate() error {
	if i.Qty < 0 {
		return fmt.Errorf("qty must not be negative")
	}
	return nil
}
