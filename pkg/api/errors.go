package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork wraps transport-level failures (DNS, connect, TLS). Non-success
// HTTP responses are *HTTPError instead.
var ErrNetwork = errors.New("network error")

// HTTPError is returned for responses outside the 2xx range.
type HTTPError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("api: unexpected status %d for %s", e.StatusCode, e.URL)
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}

// ErrorClass classifies a failure for metrics and logging.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx responses.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx responses.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport failures.
	ErrorClassNetwork ErrorClass = "network"
)

// Classify categorizes an error returned by the client.
func Classify(err error) ErrorClass {
	var he *HTTPError
	if errors.As(err, &he) {
		if he.StatusCode >= 500 {
			return ErrorClassServer
		}
		return ErrorClassClient
	}
	return ErrorClassNetwork
}

func classifyStatus(status int) ErrorClass {
	if status >= 500 {
		return ErrorClassServer
	}
	return ErrorClassClient
}
