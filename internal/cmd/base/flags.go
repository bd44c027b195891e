package base

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// FlagSet wraps the standard flag set with help rendering for mitchellh/cli.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Errors and usage are left to the command so parse
// failures are reported through the UI.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help returns the flag documentation suitable for a command's Help output.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	first := true
	f.VisitAll(func(fl *flag.Flag) {
		if first {
			buf.WriteString("\n\nOptions:\n")
			first = false
		}
		name, usage := flag.UnquoteUsage(fl)
		fmt.Fprintf(&buf, "\n  -%s", fl.Name)
		if name != "" {
			fmt.Fprintf(&buf, "=<%s>", name)
		}
		fmt.Fprintf(&buf, "\n      %s\n", strings.ReplaceAll(usage, "\n", "\n      "))
	})
	return buf.String()
}

// KeyValueFlag collects repeated key=value flags.
type KeyValueFlag map[string]string

func (kv KeyValueFlag) String() string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+kv[k])
	}
	return strings.Join(pairs, ",")
}

func (kv KeyValueFlag) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	kv[k] = strings.TrimSpace(v)
	return nil
}
