package domain

import (
	"fmt"

	apperrors "github.com/edrd/dudu/internal/errors"
)

// Method is an HTTP verb the client is able to send.
type Method string

// Supported methods, in menu order.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPatch  Method = "PATCH"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodHead   Method = "HEAD"
	MethodTrace  Method = "TRACE"
)

// DefaultMethod is the method selected when the application starts.
const DefaultMethod = MethodGet

var methods = [...]Method{
	MethodGet,
	MethodPost,
	MethodPatch,
	MethodPut,
	MethodDelete,
	MethodHead,
	MethodTrace,
}

// Methods returns all supported methods in menu order.
// The returned slice is a copy and may be modified by the caller.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods[:])
	return out
}

// MethodNames returns the supported methods as plain strings, in menu order.
func MethodNames() []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	for _, known := range methods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

// ParseMethod converts s into a Method. Matching is exact: "get" is rejected.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownMethod, s)
	}
	return m, nil
}
