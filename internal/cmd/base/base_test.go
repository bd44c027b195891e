package base

import (
	"errors"
	"flag"
	"fmt"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

func newTestCommand(env map[string]string) (*Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	return &Command{
		Log:    hclog.NewNullLogger(),
		UI:     ui,
		Getenv: func(k string) string { return env[k] },
	}, ui
}

func TestKeyValueFlag(t *testing.T) {
	kv := KeyValueFlag{}
	require.NoError(t, kv.Set("free=true"))
	require.NoError(t, kv.Set(" public = false "))
	require.NoError(t, kv.Set("empty="))
	assert.Equal(t, KeyValueFlag{"free": "true", "public": "false", "empty": ""}, kv)
	assert.Equal(t, "empty=,free=true,public=false", kv.String())

	assert.Error(t, kv.Set("novalue"))
	assert.Error(t, kv.Set("=x"))
}

func TestFlagSet_Help(t *testing.T) {
	c, _ := newTestCommand(nil)
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	c.ClientFlags(f)

	help := f.Help()
	for _, name := range []string{"-config", "-api-key", "-mode", "-base-url", "-output"} {
		assert.Contains(t, help, name)
	}
	assert.Contains(t, help, "LUKAZ_API_KEY")
}

func TestFlagSet_ParseErrorIsReturned(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	assert.Error(t, f.Parse([]string{"-nope"}))
}

func TestCommand_LoadConfigPrecedence(t *testing.T) {
	c, _ := newTestCommand(map[string]string{
		"LUKAZ_API_KEY": "env-key",
		"LUKAZ_MODE":    "stage",
	})
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	c.ClientFlags(f)
	require.NoError(t, f.Parse([]string{"-mode", "dev", "-output", "YAML"}))

	cfg, err := c.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestCommand_LoadConfigRequiresKey(t *testing.T) {
	c, _ := newTestCommand(nil)
	_, err := c.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestCommand_NewClient(t *testing.T) {
	c, _ := newTestCommand(map[string]string{
		"LUKAZ_API_KEY":  "key",
		"LUKAZ_BASE_URL": "http://127.0.0.1:1/",
	})
	client, err := c.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:1", client.BaseURL())
}

func TestCommand_Fail(t *testing.T) {
	apiErr := &lukaz.Error{Kind: lukaz.KindServer, Method: "GET", Path: "/board/", StatusCode: 500, StatusText: "Internal Server Error"}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantDocs bool
	}{
		{"usage error", errors.New("bad flag"), ExitUsage, false},
		{"server error", fmt.Errorf("failed to get boards: %w", apiErr), ExitAPIError, true},
		{"transport error", &lukaz.Error{Kind: lukaz.KindTransport, Err: errors.New("refused")}, ExitAPIError, false},
		{"aggregated api errors", multierror.Append(nil, errors.New("x"), apiErr), ExitAPIError, true},
		{"aggregated plain errors", multierror.Append(nil, errors.New("x")), ExitUsage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newTestCommand(nil)
			assert.Equal(t, tt.wantCode, c.Fail(tt.err))
			if tt.wantDocs {
				assert.Contains(t, ui.ErrorWriter.String(), lukaz.ErrorsDocsURL)
			} else {
				assert.NotContains(t, ui.ErrorWriter.String(), lukaz.ErrorsDocsURL)
			}
		})
	}
}

func TestCommand_Print(t *testing.T) {
	c, ui := newTestCommand(nil)
	assert.Equal(t, ExitOK, c.Print(map[string]int{"qty": 3}))
	assert.Equal(t, "{\n  \"qty\": 3\n}\n", ui.OutputWriter.String())
}

func TestCommand_PrintEach(t *testing.T) {
	apiErr := &lukaz.Error{Kind: lukaz.KindServer, StatusCode: 404, StatusText: "Not Found"}

	tests := []struct {
		name     string
		results  map[string]interface{}
		err      error
		wantCode int
		wantOut  bool
	}{
		{"all succeed", map[string]interface{}{"a": true}, nil, ExitOK, true},
		{"some fail", map[string]interface{}{"a": true}, multierror.Append(nil, apiErr), ExitAPIError, true},
		{"all fail", map[string]interface{}{}, multierror.Append(nil, apiErr), ExitAPIError, false},
		{"results cannot be printed", map[string]interface{}{"a": make(chan int)}, nil, ExitUsage, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newTestCommand(nil)
			assert.Equal(t, tt.wantCode, c.PrintEach(tt.results, tt.err))
			if tt.wantOut {
				assert.NotEmpty(t, ui.OutputWriter.String())
			} else {
				assert.Empty(t, ui.OutputWriter.String())
			}
		})
	}
}

func TestInstructionFlags_Fields(t *testing.T) {
	var i InstructionFlags
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	i.Register(f)
	require.NoError(t, f.Parse([]string{"-context-description", "ctx", "-include-docs", "-qty", "0"}))

	assert.Equal(t, map[string]interface{}{
		"contextDescription": "ctx",
		"includeDocs":        true,
		"qty":                0,
	}, i.Fields(SetFlags(f)))
}
