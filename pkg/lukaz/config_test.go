package lukaz

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errorMsg  string
	}{
		{
			name:   "Valid config",
			config: &Config{APIKey: "key"},
		},
		{
			name:   "Valid base URL override",
			config: &Config{APIKey: "key", BaseURL: "http://127.0.0.1:8080"},
		},
		{
			name:      "Missing API key",
			config:    &Config{},
			wantError: true,
			errorMsg:  "api key is required",
		},
		{
			name:      "Invalid URL scheme",
			config:    &Config{APIKey: "key", BaseURL: "ftp://lukaz.example.com"},
			wantError: true,
			errorMsg:  "scheme",
		},
		{
			name:      "URL without host",
			config:    &Config{APIKey: "key", BaseURL: "https://"},
			wantError: true,
			errorMsg:  "host",
		},
		{
			name:      "Negative timeout",
			config:    &Config{APIKey: "key", Timeout: -1 * time.Second},
			wantError: true,
			errorMsg:  "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewClient_AppliesDefaults(t *testing.T) {
	cfg := &Config{APIKey: "key"}
	client, err := NewClient(cfg)
	require.NoError(t, err)

	assert.Equal(t, defaultTimeout, client.config.Timeout)
	assert.Equal(t, defaultUserAgent, client.config.UserAgent)
	require.NotNil(t, client.config.TLSVerify)
	assert.True(t, *client.config.TLSVerify)
	assert.NotNil(t, client.config.Fs)
	assert.Equal(t, defaultTimeout, client.client.Timeout)

	// The caller's config is left untouched.
	assert.Zero(t, cfg.Timeout)
	assert.Nil(t, cfg.Logger)
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	client, err := NewClient(&Config{APIKey: "key", BaseURL: "http://localhost:9000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", client.BaseURL())
}

func TestConfig_NewHTTPClient(t *testing.T) {
	insecure := false
	cfg := &Config{Timeout: 7 * time.Second, TLSVerify: &insecure}

	client := cfg.NewHTTPClient()
	assert.Equal(t, 7*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}

func TestConfig_NewHTTPClientWithTracing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tracing = true

	client := cfg.NewHTTPClient()
	require.NotNil(t, client.Transport)
	_, plain := client.Transport.(*http.Transport)
	assert.False(t, plain, "tracing wraps the transport")
}

func TestNewClient_UsesInjectedHTTPClient(t *testing.T) {
	injected := &http.Client{}
	client, err := NewClient(&Config{APIKey: "key", HTTPClient: injected})
	require.NoError(t, err)
	assert.Same(t, injected, client.client)
}
