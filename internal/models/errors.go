package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an AppError for clients and for HTTP mapping.
type ErrorKind string

const (
	ErrKindNotFound          ErrorKind = "NOT_FOUND"
	ErrKindDuplicateEmail    ErrorKind = "DUPLICATE_EMAIL"
	ErrKindUserNotFound      ErrorKind = "USER_NOT_FOUND"
	ErrKindNotAuthenticated  ErrorKind = "NOT_AUTHENTICATED"
	ErrKindForbidden         ErrorKind = "FORBIDDEN"
	ErrKindValidationFailure ErrorKind = "VALIDATION_FAILURE"
	ErrKindStorageFailure    ErrorKind = "STORAGE_FAILURE"
)

// AppError is the structured error surfaced by repositories, the auth
// manager, and handlers. It carries a kind for the client and an HTTP status
// for the error handler.
type AppError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error { return e.Cause }

// StatusCode returns the HTTP status this error maps to.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case ErrKindNotFound, ErrKindUserNotFound:
		return http.StatusNotFound
	case ErrKindDuplicateEmail:
		return http.StatusConflict
	case ErrKindNotAuthenticated:
		return http.StatusUnauthorized
	case ErrKindForbidden:
		return http.StatusForbidden
	case ErrKindValidationFailure:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFoundError reports an absent work, comment, or notification.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: message}
}

// NewDuplicateEmailError reports a sign-up against an already registered email.
func NewDuplicateEmailError(email string) *AppError {
	return &AppError{Kind: ErrKindDuplicateEmail, Message: fmt.Sprintf("email %q is already registered", email)}
}

// NewUserNotFoundError reports an unknown user or email.
func NewUserNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrKindUserNotFound, Message: message}
}

// NewNotAuthenticatedError reports a mutating operation attempted without a session.
func NewNotAuthenticatedError(message string) *AppError {
	return &AppError{Kind: ErrKindNotAuthenticated, Message: message}
}

// NewForbiddenError reports an operation the session's user may not perform.
func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: ErrKindForbidden, Message: message}
}

// NewValidationError reports a malformed or incomplete request payload.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrKindValidationFailure, Message: message}
}

// NewStorageError wraps an underlying adapter read/write failure.
func NewStorageError(message string, cause error) *AppError {
	return &AppError{Kind: ErrKindStorageFailure, Message: message, Cause: cause}
}

// KindOf extracts the ErrorKind from err, or empty if err is not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
