package gptc

import (
	"errors"
	"fmt"
)

// Error variables for the failure conditions of a turn.
var (
	// ErrCredentialUnavailable indicates the API key file is missing, unreadable or blank.
	ErrCredentialUnavailable = errors.New("credential unavailable")

	// ErrSerialization indicates the conversation could not be encoded into a request.
	ErrSerialization = errors.New("serialization failure")

	// ErrTransport indicates a network-level failure (DNS, TLS, connection, timeout).
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse indicates a success response whose body does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrEmptyChoices indicates the response carried no choices to take a reply from.
	ErrEmptyChoices = errors.New("response contains no choices")
)

// RequestRejectedError is returned when the endpoint answers with a non-2xx status.
type RequestRejectedError struct {
	StatusCode int
	Body       string
}

func (e *RequestRejectedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request rejected (HTTP %d)", e.StatusCode)
	}
	return fmt.Sprintf("request rejected (HTTP %d): %s", e.StatusCode, e.Body)
}

// IsFatal reports whether err must abort the program rather than only the current turn.
func IsFatal(err error) bool {
	return errors.Is(err, ErrCredentialUnavailable) || errors.Is(err, ErrSerialization)
}
