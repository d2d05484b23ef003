package maxbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// Construction errors.
var (
	ErrTokenRequired   = errors.New("maxbot: access token is required")
	ErrBaseURLRequired = errors.New("maxbot: base URL is required")
	ErrInvalidBaseURL  = errors.New("maxbot: invalid base URL")

	// ErrInsecureScheme is returned by the transport when HTTPS is enforced
	// and a request targets another scheme.
	ErrInsecureScheme = errors.New("maxbot: only https URLs are allowed")
)

// Sentinels matched by errors.Is against the typed call errors below.
var (
	ErrTransport = errors.New("maxbot: transport error")
	ErrIO        = errors.New("maxbot: I/O error")
	ErrJSON      = errors.New("maxbot: JSON parse error")
	ErrStatus    = errors.New("maxbot: unexpected HTTP status")
)

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTransport
	KindIO
	KindJSON
	KindStatus
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindIO:
		return "io"
	case KindJSON:
		return "json"
	case KindStatus:
		return "status"
	default:
		return "unknown"
	}
}

// KindOf reports which of the four call error kinds err belongs to.
func KindOf(err error) ErrorKind {
	var (
		te *TransportError
		ie *IOError
		je *JSONError
		se *StatusError
	)
	switch {
	case errors.As(err, &te):
		return KindTransport
	case errors.As(err, &ie):
		return KindIO
	case errors.As(err, &je):
		return KindJSON
	case errors.As(err, &se):
		return KindStatus
	default:
		return KindUnknown
	}
}

// TransportError is a network, DNS, TLS, timeout or request-building failure
// that happened before a response status was available.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("maxbot: HTTP error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Timeout reports whether the underlying failure was a timeout.
func (e *TransportError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// IOError is a failure while reading the response body.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("maxbot: I/O error: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// Timeout reports whether the body read was cut short by a deadline.
func (e *IOError) Timeout() bool {
	var ne net.Error
	return errors.Is(e.Err, context.DeadlineExceeded) || (errors.As(e.Err, &ne) && ne.Timeout())
}

// JSONError is a response body that does not decode into the expected shape.
// Offset is the byte offset of the failure when known, Field the offending field.
type JSONError struct {
	Err    error
	Offset int64
	Field  string
}

func (e *JSONError) Error() string {
	switch {
	case e.Field != "" && e.Offset > 0:
		return fmt.Sprintf("maxbot: JSON parse error at offset %d (field %q): %v", e.Offset, e.Field, e.Err)
	case e.Offset > 0:
		return fmt.Sprintf("maxbot: JSON parse error at offset %d: %v", e.Offset, e.Err)
	default:
		return fmt.Sprintf("maxbot: JSON parse error: %v", e.Err)
	}
}

func (e *JSONError) Unwrap() error { return e.Err }

func (e *JSONError) Is(target error) bool { return target == ErrJSON }

// StatusError is a completed exchange with a non-2xx status. The body is not kept.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("maxbot: unexpected HTTP status: %d", e.Code)
}

func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// MissingFieldError reports a required field absent from (or null in) the payload.
type MissingFieldError struct {
	Object string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q in %s", e.Field, e.Object)
}

func newJSONError(err error) *JSONError {
	je := &JSONError{Err: err}

	var (
		syntaxErr  *json.SyntaxError
		typeErr    *json.UnmarshalTypeError
		missingErr *MissingFieldError
	)
	switch {
	case errors.As(err, &syntaxErr):
		je.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		je.Offset = typeErr.Offset
		je.Field = typeErr.Field
	case errors.As(err, &missingErr):
		je.Field = missingErr.Field
	}
	return je
}
