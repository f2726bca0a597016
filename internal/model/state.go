package model

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"github.com/dustin/go-humanize"

	"github.com/edrd/dudu/internal/domain"
	apperrors "github.com/edrd/dudu/internal/errors"
)

// DefaultURL is the URL shown when the application starts.
const DefaultURL = "https://reqres.in/api/users/2"

// ApplicationState is the single state object owned by the main window.
// UI components bind to these values; mutations go through the methods below.
type ApplicationState struct {
	Request  *RequestState
	Response *ResponseState
}

// NewApplicationState creates a new ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	return &ApplicationState{
		Request:  NewRequestState(),
		Response: NewResponseState(),
	}
}

// RequestState holds what the user is about to send.
type RequestState struct {
	URL    binding.String
	Method binding.String // always one of domain.MethodNames()
}

// NewRequestState creates a RequestState with the default URL and method.
func NewRequestState() *RequestState {
	url := binding.NewString()
	_ = url.Set(DefaultURL)

	method := binding.NewString()
	_ = method.Set(domain.DefaultMethod.String())

	return &RequestState{
		URL:    url,
		Method: method,
	}
}

// CurrentMethod returns the selected method.
func (s *RequestState) CurrentMethod() domain.Method {
	raw, _ := s.Method.Get()
	m, err := domain.ParseMethod(raw)
	if err != nil {
		return domain.DefaultMethod
	}
	return m
}

// SetMethod selects m. Methods outside the supported set are rejected.
func (s *RequestState) SetMethod(m domain.Method) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownMethod, string(m))
	}
	return s.Method.Set(m.String())
}

// Snapshot returns the request as currently entered.
func (s *RequestState) Snapshot() domain.Request {
	url, _ := s.URL.Get()
	return domain.Request{
		Method: s.CurrentMethod(),
		URL:    url,
	}
}

// ResponseState holds the outcome of the last request.
type ResponseState struct {
	Text      binding.String // display text of the current body
	NoContent binding.Bool   // whether the current body is NoContent
	Loading   binding.Bool   // true between dispatch and completion
	Error     binding.String // last failure, empty after a success
	Summary   binding.String // e.g. "200 OK · 120ms · 17 B"

	mu   sync.RWMutex
	body domain.ResponseBody
}

// NewResponseState creates a ResponseState holding an empty Content body.
func NewResponseState() *ResponseState {
	s := &ResponseState{
		Text:      binding.NewString(),
		NoContent: binding.NewBool(),
		Loading:   binding.NewBool(),
		Error:     binding.NewString(),
		Summary:   binding.NewString(),
	}
	s.Apply(domain.Content{})
	return s
}

// Body returns the current response body.
func (s *ResponseState) Body() domain.ResponseBody {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.body
}

// Apply replaces the current body.
func (s *ResponseState) Apply(body domain.ResponseBody) {
	s.mu.Lock()
	s.body = body
	s.mu.Unlock()

	_ = s.NoContent.Set(domain.IsNoContent(body))
	_ = s.Text.Set(body.Text())
}

// Complete records a finished exchange: the body is classified and replaces
// the current one, and the status summary is refreshed.
func (s *ResponseState) Complete(resp *domain.Response) {
	s.Apply(domain.ClassifyBody(resp.Body))
	_ = s.Summary.Set(FormatSummary(resp))
	_ = s.Error.Set("")
}

// Fail records a failed attempt. The current body is left as it was.
func (s *ResponseState) Fail(message string) {
	_ = s.Error.Set(message)
	_ = s.Summary.Set("")
}

// SetLoading flips the loading flag.
func (s *ResponseState) SetLoading(loading bool) {
	_ = s.Loading.Set(loading)
}

// FormatSummary renders status, duration and size on one line.
func FormatSummary(resp *domain.Response) string {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}
	size := resp.Size
	if size < 0 {
		size = 0
	}
	return fmt.Sprintf("%s · %v · %s",
		status,
		resp.Duration.Round(time.Millisecond),
		humanize.Bytes(uint64(size)),
	)
}
