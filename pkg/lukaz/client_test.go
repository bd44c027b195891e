package lukaz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what a fake server saw.
type recordedRequest struct {
	Method      string
	Path        string
	APIKey      string
	ContentType string
	Body        []byte
}

// fakeAPI is an httptest server that answers every request with a fixed
// status and body, recording what it received.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			APIKey:      r.Header.Get("x-api-key"),
			ContentType: r.Header.Get("Content-Type"),
			Body:        data,
		})
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeAPI) LastRequest(t *testing.T) recordedRequest {
	t.Helper()
	reqs := f.Requests()
	require.NotEmpty(t, reqs, "expected a request to reach the server")
	return reqs[len(reqs)-1]
}

// newTestClient returns a client pointed at baseURL that logs into buf.
func newTestClient(t *testing.T, baseURL string) (*Client, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	client, err := NewClient(&Config{
		APIKey:  "test-api-key",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Logger: hclog.New(&hclog.LoggerOptions{
			Output: &buf,
			Level:  hclog.Debug,
		}),
	})
	require.NoError(t, err)
	return client, &buf
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"dev", ModeDevelopment},
		{"development", ModeDevelopment},
		{"DEV", ModeDevelopment},
		{" stage ", ModeStaging},
		{"staging", ModeStaging},
		{"prod", ModeProduction},
		{"production", ModeProduction},
		{"", ModeProduction},
		{"qa", ModeProduction},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.in))
		})
	}
}

func TestNew_BaseURLPerMode(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{"dev", "https://europe-west1-lukaz-dev.cloudfunctions.net"},
		{"stage", "https://europe-west1-lukaz-stage.cloudfunctions.net"},
		{"prod", "https://europe-west1-lukaz-api.cloudfunctions.net"},
		{"", "https://europe-west1-lukaz-api.cloudfunctions.net"},
		{"nonsense", "https://europe-west1-lukaz-api.cloudfunctions.net"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			client, err := New("key", tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.BaseURL())
		})
	}
}

func TestNewClient_OutOfRangeModeFallsBackToProduction(t *testing.T) {
	client, err := NewClient(&Config{APIKey: "key", Mode: Mode(42)})
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, client.Mode())
	assert.Equal(t, productionBaseURL, client.BaseURL())
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")

	_, err = New("", "dev")
	require.Error(t, err)
}

func TestNewClient_LogsNonProductionMode(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &buf})

	_, err := NewClient(&Config{APIKey: "key", Mode: ModeDevelopment, Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "using non-production environment")
	assert.Contains(t, buf.String(), "mode=dev")

	buf.Reset()
	_, err = NewClient(&Config{APIKey: "key", Logger: logger})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestClient_APIKeyHeaderInEveryMode(t *testing.T) {
	for _, mode := range []Mode{ModeProduction, ModeStaging, ModeDevelopment} {
		t.Run(mode.String(), func(t *testing.T) {
			var got *http.Request
			client, err := NewClient(&Config{
				APIKey: "secret-key",
				Mode:   mode,
				HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					got = r
					return &http.Response{
						StatusCode: http.StatusOK,
						Status:     "200 OK",
						Body:       io.NopCloser(bytes.NewBufferString(`{"sessionId":"abc"}`)),
						Header:     make(http.Header),
					}, nil
				})},
			})
			require.NoError(t, err)

			_, err = client.CreateGuest(context.Background())
			require.NoError(t, err)

			require.NotNil(t, got)
			assert.Equal(t, "secret-key", got.Header.Get("x-api-key"))
			assert.Equal(t, mode.BaseURL()+"/startSession/", got.URL.String())
		})
	}
}

func TestClient_ServerError(t *testing.T) {
	api := newFakeAPI(t, http.StatusNotFound, `{"message":"not found"}`)
	client, logs := newTestClient(t, api.URL)

	board, err := client.GetBoard(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, board)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindServer, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.StatusText)
	assert.Equal(t, "not found", apiErr.Message)
	assert.Equal(t, "/board/missing", apiErr.Path)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsTransport(err))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	assert.Contains(t, logs.String(), "request failed")
	assert.Contains(t, logs.String(), "status=404")
	assert.Contains(t, logs.String(), ErrorsDocsURL)
	assert.NotContains(t, logs.String(), "test-api-key")
}

func TestClient_ServerErrorWithErrorField(t *testing.T) {
	api := newFakeAPI(t, http.StatusBadRequest, `{"error":"fileName is required"}`)
	client, _ := newTestClient(t, api.URL)

	_, err := client.DeleteFile(context.Background(), "board-1", "a.pdf")
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "fileName is required", apiErr.Message)
	assert.Contains(t, err.Error(), "status 400 (Bad Request)")
}

func TestClient_TransportError(t *testing.T) {
	var logs bytes.Buffer
	client, err := NewClient(&Config{
		APIKey: "key",
		Logger: hclog.New(&hclog.LoggerOptions{Output: &logs}),
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		})},
	})
	require.NoError(t, err)

	user, err := client.GetUser(context.Background())
	require.Error(t, err)
	assert.Nil(t, user)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Zero(t, apiErr.StatusCode)
	assert.True(t, IsTransport(err))
	assert.Contains(t, err.Error(), "connection refused")

	assert.Contains(t, logs.String(), "request error")
	assert.Contains(t, logs.String(), "connection refused")
}

func TestClient_CanceledContext(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `[]`)
	client, _ := newTestClient(t, api.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetBoards(ctx)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_UndecodableBody(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `<html>oops</html>`)
	client, _ := newTestClient(t, api.URL)

	_, err := client.GetUser(context.Background())
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_DoReturnsBodyVerbatim(t *testing.T) {
	fixture := `{"b": 2, "a": [1, 2, 3], "unknown": {"nested": true}}`
	api := newFakeAPI(t, http.StatusOK, fixture)
	client, _ := newTestClient(t, api.URL)

	raw, err := client.Do(context.Background(), http.MethodPost, "/custom/path", map[string]int{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, fixture, string(raw))

	req := api.LastRequest(t)
	assert.Equal(t, "/custom/path", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"x":1}`, string(req.Body))
}

func TestClient_BlankIDNeverReachesServer(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `true`)
	client, _ := newTestClient(t, api.URL)
	ctx := context.Background()

	calls := map[string]func() error{
		"DeleteBoard":       func() error { _, err := client.DeleteBoard(ctx, ""); return err },
		"GetBoard":          func() error { _, err := client.GetBoard(ctx, ""); return err },
		"UpdateBoard":       func() error { _, err := client.UpdateBoard(ctx, "", UpdateBoard{}); return err },
		"ListBoardPrompts":  func() error { _, err := client.ListBoardPrompts(ctx, ""); return err },
		"GetBoardPrompt":    func() error { _, err := client.GetBoardPrompt(ctx, "board", ""); return err },
		"DeletePrompt":      func() error { _, err := client.DeletePrompt(ctx, ""); return err },
		"DeleteInstruction": func() error { _, err := client.DeleteInstruction(ctx, ""); return err },
		"DeleteFile":        func() error { _, err := client.DeleteFile(ctx, "board", ""); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			_, isAPIErr := AsError(err)
			assert.False(t, isAPIErr, "validation failures are not API errors")
			assert.Contains(t, err.Error(), "cannot be blank")
		})
	}

	assert.Empty(t, api.Requests())
}

func TestClient_PathIDsAreEscaped(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{}`)
	client, _ := newTestClient(t, api.URL)

	_, err := client.GetBoard(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/board/a%2Fb%20c", api.LastRequest(t).Path)
}

func TestClient_ConcurrentUse(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, `{"id":"`+r.URL.Path[len("/board/"):]+`"}`)
	}))
	defer server.Close()

	client, err := NewClient(&Config{APIKey: "key", BaseURL: server.URL})
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			board, err := client.GetBoard(context.Background(), id)
			if err == nil && board.ID != id {
				err = errors.New("response for wrong board: " + board.ID)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(n), hits.Load())
}

func TestClient_NoRetryOnServerError(t *testing.T) {
	api := newFakeAPI(t, http.StatusServiceUnavailable, `{"message":"try later"}`)
	client, _ := newTestClient(t, api.URL)

	_, err := client.GetBoards(context.Background())
	require.Error(t, err)
	assert.Len(t, api.Requests(), 1)
}

func TestClient_UnencodableBodyFailsBeforeSending(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `true`)
	client, logs := newTestClient(t, api.URL)

	_, err := client.Do(context.Background(), http.MethodPost, "/board/", map[string]interface{}{"c": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal request body")

	_, ok := AsError(err)
	assert.False(t, ok, "local failures are not API errors")
	assert.Empty(t, api.Requests())
	assert.NotContains(t, logs.String(), "request error")
}
