package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeoutExceeded is returned when graceful timeout period exceeds.
	ErrTimeoutExceeded = New("Timeout exceeded")
	// ErrMalformedURL is returned when owner and repo cannot be derived from a remote url.
	ErrMalformedURL = New("Malformed remote url")
	// ErrTransport is returned when the commit status API could not be reached or answered unexpectedly.
	ErrTransport = New("Transport error")
	// ErrAuth is returned when the API rejects the token or the provisioning credentials.
	ErrAuth = New("Authentication rejected")
	// ErrProvision is returned when a scoped token could not be issued.
	ErrProvision = New("Token provisioning failed")
	// ErrMissingCommit is returned when the build has no commit sha to report against.
	ErrMissingCommit = New("Missing commit sha")
	// ErrUnconfigured is returned when no API credential has been provisioned yet.
	ErrUnconfigured = New("No API credential configured")
	// ErrInvalidResult is returned when a build result string is not recognised.
	ErrInvalidResult = New("Invalid build result")
	// ErrUnknownBackend is returned when the credential store backend is not supported.
	ErrUnknownBackend = New("Unknown credential store backend")
	// ErrNotPublished is returned in strict mode when a commit status could not be sent.
	ErrNotPublished = New("Commit status not published")
	// ErrTypeAssertionFailed is returned when type assertion fails for a var
	ErrTypeAssertionFailed = New("type assertion failed")
	// ErrConfigNotFound is returned when a required config value is missing
	ErrConfigNotFound = New("config not found")
	// ErrInvalidConfig is returned when a config value is out of range
	ErrInvalidConfig = New("invalid config value")
)

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

// StatusError is returned by calls against the source host API.
// Kind is one of ErrTransport, ErrAuth or ErrNotFound and is matched by errors.Is,
// Err keeps the underlying cause for logging.
type StatusError struct {
	Kind       error
	Op         string
	StatusCode int
	Err        error
}

// Error gives a human-readable description of the error.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind.Error())
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is reports whether target is the kind of this error.
func (e *StatusError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// KindName returns the short name used in logs for err's kind.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrMalformedURL):
		return "MalformedUrl"
	case errors.Is(err, ErrAuth):
		return "AuthError"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrTransport):
		return "TransportError"
	case errors.Is(err, ErrMissingCommit):
		return "MissingCommit"
	case errors.Is(err, ErrUnconfigured):
		return "Unconfigured"
	default:
		return "Unknown"
	}
}

// StatusKind classifies an HTTP status code from the source host API.
func StatusKind(code int) error {
	switch code {
	case 401, 403:
		return ErrAuth
	case 404, 422:
		return ErrNotFound
	default:
		return ErrTransport
	}
}
