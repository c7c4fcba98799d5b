package templates

import (
	"fmt"
	"strings"
)

// ErrorKind classifies render failures.
type ErrorKind string

const (
	KindMissingToken    ErrorKind = "missing_token"
	KindMissingRegion   ErrorKind = "missing_region"
	KindUnknownSeverity ErrorKind = "unknown_severity"
	KindMissingContext  ErrorKind = "missing_context"
)

// RenderError is the single failure a render call returns. No markup is
// written when a render fails.
type RenderError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// Sentinels for errors.Is matching by kind.
var (
	ErrMissingToken    = &RenderError{Kind: KindMissingToken}
	ErrMissingRegion   = &RenderError{Kind: KindMissingRegion}
	ErrUnknownSeverity = &RenderError{Kind: KindUnknownSeverity}
	ErrMissingContext  = &RenderError{Kind: KindMissingContext}
)

func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString("render ")
	b.WriteString(string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is matches any RenderError of the same kind.
func (e *RenderError) Is(target error) bool {
	t, ok := target.(*RenderError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func missingContext(format string, args ...any) error {
	return &RenderError{Kind: KindMissingContext, Detail: fmt.Sprintf(format, args...)}
}

func missingRegion(format string, args ...any) error {
	return &RenderError{Kind: KindMissingRegion, Detail: fmt.Sprintf(format, args...)}
}
