// Package apperrors defines the error taxonomy shared by the service
// layer. Handlers translate kinds to HTTP status codes in one place; the
// services themselves never produce transport-specific messages.
package apperrors

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindPersistence
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Persistence wraps a storage failure. The caller-facing message stays
// generic; the underlying error is kept for logs only.
func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: "a storage error occurred", Err: err}
}

// KindOf extracts the kind from any error chain. Unknown errors are
// treated as persistence failures.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return KindPersistence, false
}

func IsValidation(err error) bool { k, ok := KindOf(err); return ok && k == KindValidation }
func IsNotFound(err error) bool   { k, ok := KindOf(err); return ok && k == KindNotFound }
func IsConflict(err error) bool   { k, ok := KindOf(err); return ok && k == KindConflict }
