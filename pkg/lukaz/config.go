package lukaz

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
)

const (
	productionBaseURL  = "https://europe-west1-lukaz-api.cloudfunctions.net"
	stagingBaseURL     = "https://europe-west1-lukaz-stage.cloudfunctions.net"
	developmentBaseURL = "https://europe-west1-lukaz-dev.cloudfunctions.net"

	// DocsURL is the API reference linked from every failure log line.
	DocsURL = "https://docs.lukaz.ai/"

	// ErrorsDocsURL points at the error section of the API reference.
	ErrorsDocsURL = "https://docs.lukaz.ai/?javascript#errors"

	apiKeyHeader = "x-api-key"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "lukaz-go"
)

// Mode selects the deployment environment, and with it the base URL.
type Mode int

const (
	ModeProduction Mode = iota
	ModeStaging
	ModeDevelopment
)

// ParseMode resolves a mode selector. Unrecognized and empty selectors resolve
// to ModeProduction.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return ModeDevelopment
	case "stage", "staging":
		return ModeStaging
	default:
		return ModeProduction
	}
}

// String returns the short selector name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "dev"
	case ModeStaging:
		return "stage"
	default:
		return "prod"
	}
}

// BaseURL returns the API base URL for the mode. Out-of-range values map to
// production.
func (m Mode) BaseURL() string {
	switch m {
	case ModeDevelopment:
		return developmentBaseURL
	case ModeStaging:
		return stagingBaseURL
	default:
		return productionBaseURL
	}
}

// Config contains configuration for the Lukaz API client.
type Config struct {
	// APIKey is sent as the x-api-key header on every request.
	APIKey string

	// Mode selects the environment. The zero value is production.
	Mode Mode

	// BaseURL overrides the URL derived from Mode.
	// Example: "http://127.0.0.1:8080"
	BaseURL string

	// Timeout for API requests
	// Default: 30 seconds
	Timeout time.Duration

	// TLSVerify controls TLS certificate verification
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool

	// UserAgent sent with every request
	// Default: "lukaz-go"
	UserAgent string

	// Tracing wraps the HTTP transport with Datadog APM spans.
	Tracing bool

	// HTTPClient replaces the client built by NewHTTPClient. Timeout,
	// TLSVerify and Tracing are ignored when it is set.
	HTTPClient *http.Client

	// Logger receives request diagnostics. Default: null logger.
	Logger hclog.Logger

	// Fs is where LocalFile uploads are read from. Default: the OS filesystem.
	Fs afero.Fs
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		Mode:      ModeProduction,
		Timeout:   defaultTimeout,
		TLSVerify: &tlsVerify,
		UserAgent: defaultUserAgent,
	}
}

// applyDefaults fills zero-valued fields from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}
	if c.Mode < ModeProduction || c.Mode > ModeDevelopment {
		c.Mode = ModeProduction
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
}

// baseURL returns the effective base URL without a trailing slash.
func (c *Config) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return c.Mode.BaseURL()
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.APIKey, validation.Required.Error("api key is required")),
		validation.Field(&c.BaseURL, validation.By(validateBaseURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0)).Error("timeout must be non-negative")),
	)
}

func validateBaseURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base url must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("base url must include a host")
	}
	return nil
}

// NewHTTPClient creates a configured HTTP client for this config
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	client := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}

	if c.Tracing {
		client = httptrace.WrapClient(client,
			httptrace.RTWithServiceName("lukaz-client"),
		)
	}

	return client
}
