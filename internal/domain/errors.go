package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when caller input fails local validation
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when pagination parameters are outside accepted bounds
	ErrOutOfRange = errors.New("argument out of range")

	// ErrTransport is returned when the remote host cannot be reached (DNS, connection, TLS)
	ErrTransport = errors.New("transport error")

	// ErrRemoteHTTP is returned when the remote host answers with a non-success status
	ErrRemoteHTTP = errors.New("remote HTTP error")

	// ErrTimeout is returned when a request exceeds its deadline
	ErrTimeout = errors.New("request timed out")

	// ErrCancelled is returned when the caller cancels a request
	ErrCancelled = errors.New("request cancelled")

	// ErrParse is returned when a response body is not the expected JSON shape
	ErrParse = errors.New("failed to parse response")

	// ErrProductNotFound is returned when the remote source has no matching product
	ErrProductNotFound = errors.New("product not found")
)

// RemoteHTTPError carries the status code of a non-2xx response.
type RemoteHTTPError struct {
	StatusCode int
	URL        string
}

func (e *RemoteHTTPError) Error() string {
	return fmt.Sprintf("%s: status %d from %s", ErrRemoteHTTP, e.StatusCode, e.URL)
}

// Unwrap lets errors.Is match ErrRemoteHTTP
func (e *RemoteHTTPError) Unwrap() error {
	return ErrRemoteHTTP
}

// IsValidationError reports whether err was raised by local input validation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrOutOfRange)
}
