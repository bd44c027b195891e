package lukaz

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed API call.
type ErrorKind int

const (
	// KindServer means the API answered with a non-2xx status.
	KindServer ErrorKind = iota + 1

	// KindTransport means no usable response was obtained: connection
	// failures, timeouts, canceled contexts, unreadable or undecodable bodies.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the single failure shape returned by every Client operation.
type Error struct {
	Kind   ErrorKind
	Method string
	Path   string

	// StatusCode and StatusText are set for KindServer, and for KindTransport
	// when a response arrived but its body could not be used.
	StatusCode int
	StatusText string

	// Message is the "message" or "error" field of the server's JSON body,
	// if it had one.
	Message string

	// Body is the raw response body for KindServer.
	Body []byte

	// Err is the underlying cause for KindTransport.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindServer:
		if e.Message != "" {
			return fmt.Sprintf("lukaz: %s %s: status %d (%s): %s",
				e.Method, e.Path, e.StatusCode, e.StatusText, e.Message)
		}
		return fmt.Sprintf("lukaz: %s %s: status %d (%s)",
			e.Method, e.Path, e.StatusCode, e.StatusText)
	default:
		return fmt.Sprintf("lukaz: %s %s: %v", e.Method, e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newServerError(method, path string, resp *http.Response, body []byte) *Error {
	e := &Error{
		Kind:       KindServer,
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Body:       body,
	}

	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Message != "" {
			e.Message = apiErr.Message
		} else {
			e.Message = apiErr.Error
		}
	}

	return e
}

func newTransportError(method, path string, err error) *Error {
	return &Error{
		Kind:   KindTransport,
		Method: method,
		Path:   path,
		Err:    err,
	}
}

// statusText returns the reason phrase of a response, e.g. "Not Found".
func statusText(resp *http.Response) string {
	// resp.Status is "404 Not Found"; servers may send a non-standard phrase.
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if len(resp.Status) > len(prefix) && resp.Status[:len(prefix)] == prefix {
		return resp.Status[len(prefix):]
	}
	return http.StatusText(resp.StatusCode)
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	if e, ok := AsError(err); ok {
		return e.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindServer && e.StatusCode == http.StatusNotFound
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindTransport
}
