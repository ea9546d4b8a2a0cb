package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the domain errors of the
marketplace: authentication, users, caregivers, reviews and contact
messages.
*/

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-key error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

// ErrInvalidCredentials is the single message for a failed login. It never
// says which of email or password was wrong.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists signals a duplicate registration email. The unique
// index on users.email is the authoritative source of this error.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email is already registered",
	http.StatusConflict,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired session",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Admin listing ---

// ErrInvalidPageToken signals a malformed admin page token. Handlers recover
// from it with a redirect to the default listing, not an error page.
var ErrInvalidPageToken = New(
	CodeValidationFailed,
	"admin",
	"Invalid page token",
	http.StatusBadRequest,
)

// --- Reviews ---

var ErrInvalidRating = New(
	CodeValidationFailed,
	"review",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)
