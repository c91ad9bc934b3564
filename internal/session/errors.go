package session

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies session operation failures.
type ErrorKind int

const (
	ErrMalformedSubtitle ErrorKind = iota
	ErrInvalidTimestamp
	ErrNoDocument
	ErrEmptyDocument
	ErrMissingCredential
	ErrMissingTargetLanguage
	ErrQuotaExceeded
	ErrTranslation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedSubtitle:
		return "MalformedSubtitle"
	case ErrInvalidTimestamp:
		return "InvalidTimestamp"
	case ErrNoDocument:
		return "NoDocument"
	case ErrEmptyDocument:
		return "EmptyDocument"
	case ErrMissingCredential:
		return "MissingCredential"
	case ErrMissingTargetLanguage:
		return "MissingTargetLanguage"
	case ErrQuotaExceeded:
		return "QuotaExceeded"
	case ErrTranslation:
		return "Translation"
	default:
		return "Unknown"
	}
}

// Error is the typed failure returned by session operations. Context
// carries structured detail, e.g. total_chars and limit for QuotaExceeded.
type Error struct {
	Kind    ErrorKind
	Message string
	Context map[string]any
	Cause   error
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Context: make(map[string]any),
	}
}

func wrapError(kind ErrorKind, message string, cause error) *Error {
	err := newError(kind, message)
	err.Cause = cause
	return err
}

func (e *Error) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s] %s", e.Kind, e.Message))

	if len(e.Context) > 0 {
		var ctxParts []string
		for k, v := range e.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context: %s", strings.Join(ctxParts, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}

	return strings.Join(parts, " | ")
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext attaches a structured detail field to the error.
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// IsKind reports whether err is a session *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var sessionErr *Error
	if errors.As(err, &sessionErr) {
		return sessionErr.Kind == kind
	}
	return false
}

// Advice returns a user-facing recovery hint for the error.
func Advice(err error) string {
	var sessionErr *Error
	if !errors.As(err, &sessionErr) {
		return "Review detailed error information and check relevant configuration and files"
	}

	switch sessionErr.Kind {
	case ErrMalformedSubtitle, ErrInvalidTimestamp:
		return "Check that the file is a valid SRT subtitle and reselect it"
	case ErrNoDocument, ErrEmptyDocument:
		return "Load a subtitle file with translatable text first"
	case ErrMissingCredential:
		return "Set the DeepL API key before translating"
	case ErrMissingTargetLanguage:
		return "Choose a target language before translating"
	case ErrQuotaExceeded:
		return "Reduce the subtitle volume or raise the configured character limit"
	case ErrTranslation:
		return "Check the API key, network connectivity and the provider's service status, then retry"
	default:
		return "Review detailed error information and check relevant configuration and files"
	}
}
