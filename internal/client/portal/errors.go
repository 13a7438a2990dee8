package portal

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the transport failed and no response was received.
	// Callers must not expect any server message alongside it.
	ErrUnavailable = errors.New("server unavailable")

	// ErrMalformedResponse means a response arrived but its payload did not
	// have the expected shape.
	ErrMalformedResponse = errors.New("malformed server response")
)

// RejectionError is returned when the server answered with success:false.
// Message carries the server-provided explanation and may be empty.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return fmt.Sprintf("request rejected by server: %s", e.Message)
}

// UserMessage extracts a message suitable for showing to the user. The
// server's own message is preferred when the error is a rejection with one;
// every other failure (transport, malformed payload) falls back to the
// given generic message, since there may be no response to read fields from.
func UserMessage(err error, fallback string) string {
	var rej *RejectionError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}
	return fallback
}
