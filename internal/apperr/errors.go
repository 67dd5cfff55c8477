// Package apperr defines the sentinel errors shared across usecases and the
// HTTP status mapping applied at the delivery boundary.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidParent      = errors.New("parent folder not found")
	ErrFolderNotEmpty     = errors.New("cannot delete folder with contents")
	ErrBillingExists      = errors.New("billing data already exists for this client")
	ErrOAuthNotConfigured = errors.New("google authentication is not properly configured")
)

// Status maps a usecase error to an HTTP status code. Unknown errors are
// reported as 500 so callers never see internal detail.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrBillingExists):
		return http.StatusConflict
	case errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrInvalidParent),
		errors.Is(err, ErrFolderNotEmpty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the body text for a usecase error. Unexpected errors get a
// generic message; the real cause is logged server-side.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
