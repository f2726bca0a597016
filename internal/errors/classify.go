package errors

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// ErrorSeverity indicates the severity of an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // User should know, not blocking
	SeverityWarning                      // Degraded functionality
	SeverityError                        // Operation failed, can retry
	SeverityFatal                        // Application must exit
)

// UIError wraps an error with UI-friendly presentation metadata.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string   // Short user-facing title
	Message  string   // Detailed user-facing message
	Recovery []string // Suggested actions (bullet points)
	Details  string   // Technical details
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// Summary returns "Title: Message", suitable for a single status line.
func (e UIError) Summary() string {
	if e.Message == "" {
		return e.Title
	}
	return e.Title + ": " + e.Message
}

// ClassifyError converts a standard error into a UIError with appropriate
// severity, title, message, and recovery suggestions.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	// Check if already a UIError
	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	switch {
	case errors.Is(err, ErrMalformedURL):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid URL",
			Message:  "The URL could not be parsed. Nothing was sent.",
			Recovery: []string{"Use an absolute URL such as https://example.com/path"},
			Details:  err.Error(),
		}

	case errors.Is(err, ErrUnknownMethod):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Unsupported Method",
			Message:  "Only GET, POST, PATCH, PUT, DELETE, HEAD and TRACE can be sent.",
			Details:  err.Error(),
		}

	case errors.Is(err, context.DeadlineExceeded):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The server took too long to respond.",
			Recovery: []string{"Try again"},
			Details:  err.Error(),
		}

	case errors.Is(err, context.Canceled):
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request Cancelled",
			Message:  "The operation was cancelled.",
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Host Not Found",
			Message:  "The host name " + dnsErr.Name + " could not be resolved.",
			Recovery: []string{"Check the spelling of the host", "Check your network connection"},
			Details:  err.Error(),
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Connection Refused",
			Message:  "Nothing is listening at that address.",
			Recovery: []string{"Check that the server is running", "Verify the host and port"},
			Details:  err.Error(),
		}
	}

	if errors.Is(err, ErrRequestFailed) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Failed",
			Message:  "The request could not be completed.",
			Recovery: []string{"Check your network connection", "Try again"},
			Details:  err.Error(),
		}
	}

	// Validation errors
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	// Default fallback for unknown errors
	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  err.Error(),
	}
}
