package ai

import (
	"errors"
	"fmt"
)

// Kind classifies a failed completion.
type Kind string

const (
	KindMissingCredentials Kind = "missing_credentials"
	KindTransport          Kind = "transport"
	KindStatus             Kind = "status"
	KindEmptyResponse      Kind = "empty_response"
	KindMalformedJSON      Kind = "malformed_json"
	KindUnknown            Kind = "unknown"
)

// Error is returned by every provider failure.
type Error struct {
	Provider   string
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (%d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// requestError wraps a client error, using statusCode when the client
// reported one.
func requestError(provider string, statusCode int, err error) *Error {
	if statusCode != 0 {
		return &Error{Provider: provider, Kind: KindStatus, StatusCode: statusCode, Err: err}
	}
	return &Error{Provider: provider, Kind: KindTransport, Err: err}
}
