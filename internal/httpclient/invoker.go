package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/edrd/dudu/internal/domain"
	apperrors "github.com/edrd/dudu/internal/errors"
	"github.com/edrd/dudu/internal/logging"
)

// maxLogBodyLen caps how much of a response body is written to debug logs.
const maxLogBodyLen = 1024

// Invoker sends single bodyless HTTP requests and returns the raw response.
// It never retries and adds no timeout of its own.
type Invoker struct {
	client *resty.Client
	logger *slog.Logger
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithRestyClient replaces the underlying resty client, e.g. to install a custom transport.
func WithRestyClient(c *resty.Client) Option {
	return func(i *Invoker) {
		i.client = c
	}
}

// WithDebug turns on resty's request/response dump, routed to the invoker's logger.
func WithDebug(debug bool) Option {
	return func(i *Invoker) {
		i.client.SetDebug(debug)
	}
}

// NewInvoker creates an invoker logging to logger.
func NewInvoker(logger *slog.Logger, opts ...Option) *Invoker {
	i := &Invoker{
		client: resty.New(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.client.
		SetRetryCount(0).
		SetRedirectPolicy(stopAtFirstResponse()).
		SetCookieJar(nil).
		SetLogger(logging.NewPrintfLogger(logger, "resty"))
	return i
}

// stopAtFirstResponse makes a 3xx answer the final response: its body and
// status are returned as-is and the Location is never requested.
func stopAtFirstResponse() resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	})
}

// Invoke sends req and waits for the response.
//
// The URL must be an absolute http or https URL; otherwise an error wrapping
// ErrMalformedURL is returned and nothing is sent. Transport failures wrap
// ErrRequestFailed. Any HTTP status, including 3xx, 4xx and 5xx, is a
// successful exchange and its body is returned unmodified. Redirects are not
// followed and cookies are not carried between calls.
func (i *Invoker) Invoke(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if !req.Method.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownMethod, string(req.Method))
	}
	if err := validateURL(req.URL); err != nil {
		i.logger.Debug("rejected request URL",
			slog.String("url", req.URL),
			slog.Any("error", err),
		)
		return nil, err
	}

	requestID := uuid.New().String()
	logger := i.logger.With(
		slog.String("request_id", requestID),
		slog.String("method", req.Method.String()),
		slog.String("url", req.URL),
	)
	logger.Debug("sending request")

	resp, err := i.client.R().
		SetContext(ctx).
		Execute(req.Method.String(), req.URL)
	if err != nil {
		logger.Error("request failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrRequestFailed, err)
	}

	body := string(resp.Body())
	logger.Debug("response received",
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", resp.Time()),
		slog.String("body", truncateForLog(body)),
	)

	return &domain.Response{
		RequestID:  requestID,
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       body,
		Size:       resp.Size(),
		Duration:   resp.Time(),
	}, nil
}

// validateURL accepts absolute http(s) URLs with a host.
func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrMalformedURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", apperrors.ErrMalformedURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", apperrors.ErrMalformedURL, raw)
	}
	return nil
}

func truncateForLog(s string) string {
	if len(s) <= maxLogBodyLen {
		return s
	}
	return s[:maxLogBodyLen] + fmt.Sprintf("... (%d bytes total)", len(s))
}
