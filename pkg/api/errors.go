package api

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned for any non-2xx response from the hosting API.
// Callers branch on StatusCode: 401 means the credential is invalid, 404
// means the resource is absent, 5xx is an infrastructure failure.
type HTTPError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s %s", e.StatusCode, e.Method, e.Path)
}

// StatusCode extracts the HTTP status from err, or 0 when err carries none.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
