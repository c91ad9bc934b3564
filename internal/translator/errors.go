package translator

import (
	"errors"
	"fmt"
)

// ErrorKind classifies provider call failures into a closed taxonomy.
type ErrorKind int

const (
	// KindTransport means the provider could not be reached at all:
	// connection failure, DNS, timeout.
	KindTransport ErrorKind = iota
	// KindAuthFailed means the credential is missing or rejected.
	KindAuthFailed
	// KindQuotaExceeded means the provider-side character quota is spent.
	// Distinct from the local pre-check, which is only an estimate.
	KindQuotaExceeded
	// KindProvider covers any other provider-reported failure: rate
	// limit, bad language code, service unavailable.
	KindProvider
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "Transport"
	case KindAuthFailed:
		return "AuthenticationFailed"
	case KindQuotaExceeded:
		return "QuotaExceededRemote"
	case KindProvider:
		return "Provider"
	default:
		return "Unknown"
	}
}

// ClientError is the typed failure returned by Translator implementations.
type ClientError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

func newError(kind ErrorKind, message string) *ClientError {
	return &ClientError{Kind: kind, Message: message}
}

func wrapError(kind ErrorKind, message string, cause error) *ClientError {
	return &ClientError{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err is a *ClientError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Kind == kind
	}
	return false
}
