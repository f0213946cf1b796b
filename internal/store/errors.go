package store

import (
	"fmt"
	"net/http"
)

// Error is a storage error with an HTTP status code.
type Error struct {
	Code    int    // HTTP status code
	Message string // User-facing message
	Err     error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int { return e.Code }

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Sentinel errors.
var (
	ErrNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "resource not found",
	}

	ErrAlreadyExists = &Error{
		Code:    http.StatusConflict,
		Message: "resource already exists",
	}

	ErrUserNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "user not found",
	}

	ErrUsernameExists = &Error{
		Code:    http.StatusConflict,
		Message: "username already in use",
	}

	ErrContentNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "content not found",
	}

	ErrTagNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "tag not found",
	}

	ErrTagExists = &Error{
		Code:    http.StatusConflict,
		Message: "tag already exists",
	}

	ErrShareLinkNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "share link not found",
	}

	ErrShareHashExists = &Error{
		Code:    http.StatusConflict,
		Message: "share hash already in use",
	}
)
