package lukaz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Client calls the Lukaz API. Every method issues exactly one HTTP request and
// never retries. A Client is safe for concurrent use.
type Client struct {
	config  *Config
	baseURL string
	client  *http.Client
	logger  hclog.Logger
}

// New creates a client for apiKey in the environment named by mode ("prod",
// "stage", "dev"). Unrecognized modes select production.
func New(apiKey, mode string) (*Client, error) {
	cfg := DefaultConfig()
	cfg.APIKey = apiKey
	cfg.Mode = ParseMode(mode)
	return NewClient(cfg)
}

// NewClient creates a new API client from cfg. cfg is not retained by
// reference; later changes to it have no effect.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lukaz client config: %w", err)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = c.NewHTTPClient()
	}

	client := &Client{
		config:  &c,
		baseURL: c.baseURL(),
		client:  httpClient,
		logger:  c.Logger.Named("lukaz"),
	}

	if c.Mode != ModeProduction {
		client.logger.Info("using non-production environment",
			"mode", c.Mode.String(),
			"base_url", client.baseURL,
		)
	}

	return client, nil
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Mode returns the environment the client was built for.
func (c *Client) Mode() Mode {
	return c.config.Mode
}

// Do issues a request against an arbitrary API path and returns the response
// body unmodified. body, if non-nil, is sent as JSON.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, method, path, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// encodedBody is a request body that is already serialized, e.g. multipart.
type encodedBody struct {
	contentType string
	data        []byte
}

// doRequest executes one HTTP request and decodes a 2xx response into result.
// Failures of the exchange with the server are returned as *Error and logged.
// A body that cannot be encoded, or a request that cannot be built, fails
// before anything is sent and is returned as a plain error.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	endpoint := c.baseURL + path

	var (
		bodyReader  io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case *encodedBody:
		bodyReader = bytes.NewReader(b.data)
		contentType = b.contentType
	default:
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug("sending request", "method", method, "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("request error",
			"method", method,
			"path", path,
			"error", err,
			"docs", ErrorsDocsURL,
		)
		return newTransportError(method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("request error",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"error", err,
			"docs", ErrorsDocsURL,
		)
		e := newTransportError(method, path, fmt.Errorf("failed to read response: %w", err))
		e.StatusCode, e.StatusText = resp.StatusCode, statusText(resp)
		return e
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := newServerError(method, path, resp, respBody)
		c.logger.Error("request failed",
			"method", method,
			"path", path,
			"status", e.StatusCode,
			"status_text", e.StatusText,
			"docs", ErrorsDocsURL,
		)
		return e
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			c.logger.Error("request error",
				"method", method,
				"path", path,
				"status", resp.StatusCode,
				"error", err,
				"docs", ErrorsDocsURL,
			)
			e := newTransportError(method, path, fmt.Errorf("failed to decode response: %w", err))
			e.StatusCode, e.StatusText = resp.StatusCode, statusText(resp)
			return e
		}
	}

	return nil
}

// entityPath joins a collection path such as "/board/" with escaped ids. Each
// id must be non-empty; a blank id would silently address the collection.
func entityPath(collection string, ids ...namedID) (string, error) {
	path := collection
	for i, id := range ids {
		if err := validation.Validate(id.value, validation.Required); err != nil {
			return "", fmt.Errorf("%s: %w", id.name, err)
		}
		if i > 0 {
			path += "/"
		}
		path += url.PathEscape(id.value)
	}
	return path, nil
}

type namedID struct {
	name  string
	value string
}

func boardID(v string) namedID       { return namedID{"board id", v} }
func promptID(v string) namedID      { return namedID{"prompt id", v} }
func instructionID(v string) namedID { return namedID{"instruction id", v} }
