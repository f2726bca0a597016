package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrMalformedURL  = errors.New("malformed URL")
	ErrRequestFailed = errors.New("request failed")
	ErrUnknownMethod = errors.New("unknown HTTP method")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
