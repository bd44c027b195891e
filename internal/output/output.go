// Package output renders API results for the lukaz CLI.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Write encodes v to w. YAML output goes through the JSON encoding first so
// both formats use the same field names.
func Write(w io.Writer, format Format, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch format {
	case FormatYAML:
		var generic interface{}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&generic); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(numbersToYAML(generic)); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return enc.Close()

	default:
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	}
}

// numbersToYAML swaps json.Number for int64 or float64, which yaml.v3
// otherwise writes as quoted strings.
func numbersToYAML(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, e := range t {
			t[k] = numbersToYAML(e)
		}
		return t
	case []interface{}:
		for i, e := range t {
			t[i] = numbersToYAML(e)
		}
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
