package errors

import (
	stdErrors "errors"
	"fmt"
)

// FetchError represents a non-200 response from the citation registry.
// The status code is carried as-is; codes are not classified further.
type FetchError struct {
	StatusCode int
	Body       string // Leading part of the response body, if any
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("HTTP error %d", e.StatusCode)
}

// NewFetchError creates a new FetchError for the given status code
func NewFetchError(statusCode int, body string) *FetchError {
	return &FetchError{
		StatusCode: statusCode,
		Body:       body,
	}
}

// IsFetchError checks if error is a FetchError
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return stdErrors.As(err, &fetchErr)
}

// StatusCode returns the HTTP status carried by a wrapped FetchError, or 0.
func StatusCode(err error) int {
	var fetchErr *FetchError
	if stdErrors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return 0
}
