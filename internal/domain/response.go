package domain

import (
	"strings"
	"time"
)

// NoContentText is the text shown in place of an empty response body.
const NoContentText = "<no content>"

// ResponseBody is the classified body of the last response.
// It is either Content or NoContent.
type ResponseBody interface {
	// Text returns the text to display for this body.
	Text() string
	isResponseBody()
}

// Content holds a non-blank response body, displayed verbatim.
type Content struct {
	Body string
}

func (c Content) Text() string { return c.Body }

func (Content) isResponseBody() {}

// NoContent stands for an empty or whitespace-only response body.
type NoContent struct{}

func (NoContent) Text() string { return NoContentText }

func (NoContent) isResponseBody() {}

// ClassifyBody maps a raw body to NoContent when it is empty or blank,
// and to Content otherwise. The text of Content is kept unmodified.
func ClassifyBody(body string) ResponseBody {
	if strings.TrimSpace(body) == "" {
		return NoContent{}
	}
	return Content{Body: body}
}

// IsNoContent reports whether b is the NoContent variant.
func IsNoContent(b ResponseBody) bool {
	_, ok := b.(NoContent)
	return ok
}

// Request is a single bodyless HTTP request as entered by the user.
type Request struct {
	Method Method
	URL    string
}

// Response is the outcome of a completed HTTP exchange.
// Any status code counts as completed; only transport failures are errors.
type Response struct {
	RequestID  string
	StatusCode int
	Status     string
	Body       string
	Size       int64
	Duration   time.Duration
}
