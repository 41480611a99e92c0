// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package streak

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error so callers can pick a status code and log level
// without inspecting message text.
type Kind int

const (
	// KindUnknown is the zero value; it is never produced by this package.
	KindUnknown Kind = iota

	// KindInvalidInput covers bad weekday names and malformed years.
	KindInvalidInput

	// KindDataIntegrity covers conflicting or malformed calendar data.
	KindDataIntegrity

	// KindNotFound means the calendar source has no such user.
	KindNotFound

	// KindUpstream means the calendar source failed or was unreachable.
	KindUpstream
)

// String returns the kind name used in logs and JSON error bodies.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindDataIntegrity:
		return "data_integrity"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Status maps the kind onto an HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the tagged error type shared by the core and its collaborators.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for this error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Is matches another *Error with the same Kind, so sentinel comparisons like
// errors.Is(err, &Error{Kind: KindNotFound}) work.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
	ErrDataIntegrity = &Error{Kind: KindDataIntegrity}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrUpstream      = &Error{Kind: KindUpstream}
)

// InvalidInput creates a KindInvalidInput error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// DataIntegrity creates a KindDataIntegrity error.
func DataIntegrity(format string, args ...any) *Error {
	return &Error{Kind: KindDataIntegrity, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Upstream wraps err as a KindUpstream error.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusOf returns the HTTP status for err. Errors that are not *Error are
// treated as internal failures.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for err. Errors outside this
// package are hidden behind a generic message.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "An unexpected error occurred."
}
