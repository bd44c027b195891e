// Package base holds the state and helpers shared by every lukaz CLI command.
package base

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/lukaz-ai/lukaz-go/internal/config"
	"github.com/lukaz-ai/lukaz-go/internal/output"
	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitAPIError = 2
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// HTTPClient and Fs, when set, are handed to the API client.
	HTTPClient *http.Client
	Fs         afero.Fs

	flagConfig  string
	flagAPIKey  string
	flagMode    string
	flagBaseURL string
	flagOutput  string

	format output.Format
}

// ClientFlags registers the flags that select and authenticate the API.
func (c *Command) ClientFlags(f *FlagSet) {
	f.StringVar(&c.flagConfig, "config", "",
		fmt.Sprintf("Path to an HCL config file. Defaults to %s.", config.EnvVar("config")))
	f.StringVar(&c.flagAPIKey, "api-key", "",
		fmt.Sprintf("API key. Overrides api_key and %s.", config.EnvVar("api_key")))
	f.StringVar(&c.flagMode, "mode", "",
		"Environment: prod, stage or dev.")
	f.StringVar(&c.flagBaseURL, "base-url", "",
		"Base URL of the API. Overrides the mode.")
	f.StringVar(&c.flagOutput, "output", "",
		"Output format: json or yaml.")
}

func (c *Command) getenv(key string) string {
	if c.Getenv == nil {
		return os.Getenv(key)
	}
	return c.Getenv(key)
}

// LoadConfig loads and validates configuration, with flags taking
// precedence over the environment and the config file.
func (c *Command) LoadConfig() (*config.Config, error) {
	path := c.flagConfig
	if path == "" {
		path = c.getenv(config.EnvVar("config"))
	}

	cfg, err := config.Load(path, c.getenv)
	if err != nil {
		return nil, err
	}

	if c.flagAPIKey != "" {
		cfg.APIKey = c.flagAPIKey
	}
	if c.flagMode != "" {
		cfg.Mode = c.flagMode
	}
	if c.flagBaseURL != "" {
		cfg.BaseURL = c.flagBaseURL
	}
	if c.flagOutput != "" {
		cfg.Output = strings.ToLower(c.flagOutput)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c.format, err = output.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))

	return cfg, nil
}

// NewClient loads configuration and builds an API client from it.
func (c *Command) NewClient() (*lukaz.Client, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	clientCfg, err := cfg.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}
	clientCfg.HTTPClient = c.HTTPClient
	if c.Fs != nil {
		clientCfg.Fs = c.Fs
	}

	return lukaz.NewClient(clientCfg)
}

// Context returns a context canceled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Print writes v to the UI in the configured output format.
func (c *Command) Print(v interface{}) int {
	var buf bytes.Buffer
	if err := output.Write(&buf, c.format, v); err != nil {
		c.UI.Error(err.Error())
		return ExitUsage
	}
	c.UI.Output(strings.TrimRight(buf.String(), "\n"))
	return ExitOK
}

// PrintEach prints the results of base.EachID and reports its error. A
// failure to print is not hidden by the calls that succeeded.
func (c *Command) PrintEach(results map[string]interface{}, err error) int {
	code := ExitOK
	if len(results) > 0 {
		code = c.Print(results)
	}
	if err != nil {
		return c.Fail(err)
	}
	return code
}

// Usage reports a usage error.
func (c *Command) Usage(format string, args ...interface{}) int {
	c.UI.Error(fmt.Sprintf(format, args...))
	return ExitUsage
}

// Fail reports err and returns the matching exit code.
func (c *Command) Fail(err error) int {
	c.UI.Error(err.Error())

	apiErrs := APIErrors(err)
	if len(apiErrs) == 0 {
		return ExitUsage
	}
	for _, e := range apiErrs {
		if e.Kind == lukaz.KindServer {
			c.UI.Error("See " + lukaz.ErrorsDocsURL)
			break
		}
	}
	return ExitAPIError
}

// APIErrors returns the *lukaz.Error values in err, looking inside
// aggregated errors.
func APIErrors(err error) []*lukaz.Error {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		var out []*lukaz.Error
		for _, e := range merr.Errors {
			out = append(out, APIErrors(e)...)
		}
		return out
	}

	if e, ok := lukaz.AsError(err); ok {
		return []*lukaz.Error{e}
	}
	return nil
}
