package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBaseURLRequired is returned by New when no base URL is given.
var ErrBaseURLRequired = errors.New("assessrec: base URL required")

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Title      string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("assessrec: %d %s: %s", e.StatusCode, e.Title, e.Message)
	}
	return fmt.Sprintf("assessrec: %d %s", e.StatusCode, e.Title)
}

// IsBadRequest reports whether err is an APIError with status 400.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
