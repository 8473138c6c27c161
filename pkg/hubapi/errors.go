package hubapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the backend API. The client does not
// interpret status codes itself; callers decide what, if anything, a given
// status means.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == status
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsForbidden reports whether err is an upstream 403.
func IsForbidden(err error) bool {
	return IsStatus(err, http.StatusForbidden)
}
