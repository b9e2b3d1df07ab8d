package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors. Message is what the
// client sees, Cause is kept for logs and errors.Is/As.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// BadRequest builds a 400 error with a client facing message.
func BadRequest(message string) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// Internal builds a 500 error that keeps the underlying cause.
func Internal(message string, cause error) ApplicationError {
	return ApplicationError{
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
