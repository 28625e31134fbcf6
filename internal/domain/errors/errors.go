package errors

import (
	"errors"
	"net/http"
)

// Domain errors. One sentinel per failure class; every operation returns a
// wrapped instance of exactly one of these.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrStateConflict     = errors.New("state conflict")
	ErrAlreadyDone       = errors.New("already done")
	ErrDeadlineViolation = errors.New("deadline violation")
	ErrTransferFailed    = errors.New("transfer failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
)

// AppError represents an application error with HTTP status and a stable
// machine-readable code
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel for errors.Is checks
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "ERR_NOT_FOUND", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "ERR_INVALID_INPUT", message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "ERR_UNAUTHORIZED", message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "ERR_FORBIDDEN", message, ErrForbidden)
}

// StateConflict reports an operation invalid for the record's current
// lifecycle status
func StateConflict(message string) *AppError {
	return NewAppError(http.StatusConflict, "ERR_STATE_CONFLICT", message, ErrStateConflict)
}

// AlreadyDone reports a double-back, double-vote, double-refund or re-release
func AlreadyDone(message string) *AppError {
	return NewAppError(http.StatusConflict, "ERR_ALREADY_DONE", message, ErrAlreadyDone)
}

// DeadlineViolation reports acting before or after a required deadline
func DeadlineViolation(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, "ERR_DEADLINE", message, ErrDeadlineViolation)
}

// TransferFailed reports that the external transfer primitive rejected the
// value movement
func TransferFailed(err error) *AppError {
	return NewAppError(http.StatusBadGateway, "ERR_TRANSFER_FAILED", "value transfer failed", errors.Join(ErrTransferFailed, err))
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "ERR_INTERNAL", "internal server error", err)
}
