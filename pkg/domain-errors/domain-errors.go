package domainerrors

import "errors"

// Code represents a domain error category independent of any encoding or
// transport. Callers branch on the code, never on the message.
type Code string

const (
	// CodeInvalidInput marks a value that is not a member of its domain,
	// e.g. a GDPR applicability tag outside -1/0/1.
	CodeInvalidInput Code = "invalid_input"
	CodeInternal     Code = "internal_error"
)

// Error wraps a decoding or validation failure with a stable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error around cause.
// If cause is already a domain error, its code wins over code.
func Wrap(cause error, code Code, msg string) error {
	var existing *Error
	if errors.As(cause, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: cause}
	}
	return &Error{Code: code, Message: msg, Err: cause}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
