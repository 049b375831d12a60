package gptzero

import "errors"

var (
	// ErrTransport is returned when a request could not be sent or its response could not be read.
	ErrTransport = errors.New("transport error")
	// ErrRequestFailed is returned when the API answered with a non-success status.
	ErrRequestFailed = errors.New("request failed")
	// ErrEmptyResponse is returned when the API answered without a result.
	ErrEmptyResponse = errors.New("empty response")
	// ErrMalformedResponse is returned when a response does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidInput is returned for arguments rejected before a request is sent.
	ErrInvalidInput = errors.New("invalid input")
)

// GeneratedThreshold is the generated probability at or above which a sentence
// is highlighted and footnoted in a report.
const GeneratedThreshold = 0.5
