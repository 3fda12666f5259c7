package errors

import "errors"

// MalformedResponseError is returned when a 200 response does not have the
// expected citation shape.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return "malformed registry response: " + e.Reason + ": " + e.Err.Error()
	}
	return "malformed registry response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// NewMalformedResponseError creates a MalformedResponseError with the provided reason.
func NewMalformedResponseError(reason string, err error) *MalformedResponseError {
	return &MalformedResponseError{Reason: reason, Err: err}
}

// IsMalformedResponse reports whether err is a MalformedResponseError (even when wrapped).
func IsMalformedResponse(err error) bool {
	var malformed *MalformedResponseError
	return errors.As(err, &malformed)
}
