// Package config loads lukaz CLI configuration from an HCL file and the
// environment.
//
// Example configuration (HCL):
//
//	api_key  = env("LUKAZ_API_KEY")
//	mode     = "dev"
//	timeout  = "30s"
//	output   = "yaml"
//
// Every attribute can also be set with a LUKAZ_ prefixed environment
// variable, e.g. LUKAZ_API_KEY or LUKAZ_LOG_LEVEL. The environment wins over
// the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/iancoleman/strcase"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/lukaz-ai/lukaz-go/pkg/lukaz"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LUKAZ_"

const (
	defaultMode     = "prod"
	defaultTimeout  = "30s"
	defaultLogLevel = "warn"
	defaultOutput   = "json"
)

// Config is the lukaz CLI configuration.
type Config struct {
	APIKey    string `hcl:"api_key,optional"`
	Mode      string `hcl:"mode,optional"`
	BaseURL   string `hcl:"base_url,optional"`
	Timeout   string `hcl:"timeout,optional"`
	TLSVerify *bool  `hcl:"tls_verify,optional"`
	Tracing   bool   `hcl:"tracing,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	Output    string `hcl:"output,optional"`
}

// Getenv looks up an environment variable; os.Getenv satisfies it.
type Getenv func(string) string

// Load reads the HCL file at path, if path is not empty, then applies
// environment overrides and defaults. It does not validate.
func Load(path string, getenv Getenv) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}

		if err := hclsimple.DecodeFile(path, evalContext(getenv), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// evalContext exposes env("NAME") to configuration files.
func evalContext(getenv Getenv) *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					return cty.StringVal(getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}

// EnvVar returns the environment variable that overrides an HCL attribute.
func EnvVar(attribute string) string {
	return EnvPrefix + strcase.ToScreamingSnake(attribute)
}

func (c *Config) applyEnv(getenv Getenv) error {
	strs := map[string]*string{
		"api_key":   &c.APIKey,
		"mode":      &c.Mode,
		"base_url":  &c.BaseURL,
		"timeout":   &c.Timeout,
		"log_level": &c.LogLevel,
		"output":    &c.Output,
	}
	for attr, field := range strs {
		if v := getenv(EnvVar(attr)); v != "" {
			*field = v
		}
	}

	if v := getenv(EnvVar("tls_verify")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvVar("tls_verify"), err)
		}
		c.TLSVerify = &b
	}

	if v := getenv(EnvVar("tracing")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvVar("tracing"), err)
		}
		c.Tracing = b
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = defaultMode
	}
	if c.Timeout == "" {
		c.Timeout = defaultTimeout
	}
	if c.TLSVerify == nil {
		tlsVerify := true
		c.TLSVerify = &tlsVerify
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	c.Output = strings.ToLower(c.Output)
	c.LogLevel = strings.ToLower(c.LogLevel)
}

// Validate checks if the configuration is valid. Unknown modes are not an
// error; they select production.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIKey,
			validation.Required.Error(
				fmt.Sprintf("is required (set api_key or %s)", EnvVar("api_key")))),
		validation.Field(&c.Timeout, validation.By(positiveDuration)),
		validation.Field(&c.LogLevel,
			validation.In("trace", "debug", "info", "warn", "error", "off")),
		validation.Field(&c.Output, validation.In("json", "yaml")),
	)
}

func positiveDuration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("must be a duration such as 30s")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// ClientConfig converts the configuration into an API client config.
func (c *Config) ClientConfig(logger hclog.Logger) (*lukaz.Config, error) {
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	cfg := lukaz.DefaultConfig()
	cfg.APIKey = c.APIKey
	cfg.Mode = lukaz.ParseMode(c.Mode)
	cfg.BaseURL = c.BaseURL
	cfg.Timeout = timeout
	cfg.TLSVerify = c.TLSVerify
	cfg.Tracing = c.Tracing
	cfg.Logger = logger

	return cfg, nil
}
