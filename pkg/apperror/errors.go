package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation & Conflict (VAL) ----

// Validation returns a generic validation error with a caller-supplied message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidEmail() *AppError {
	return New("VAL_001", "Email address is malformed", http.StatusBadRequest)
}

func ErrDuplicateEmail() *AppError {
	return New("VAL_002", "Email address is already registered", http.StatusConflict)
}

func ErrUnknownAccount(id int64) *AppError {
	return New("VAL_003", fmt.Sprintf("Account %d not found", id), http.StatusNotFound)
}

// ---- Session & Authorization (SES) ----

func ErrInvalidCredentials() *AppError {
	return New("SES_001", "Invalid email or password", http.StatusUnauthorized)
}

func ErrInvalidSession() *AppError {
	return New("SES_002", "Invalid or expired session", http.StatusUnauthorized)
}

func ErrAdminRequired() *AppError {
	return New("SES_003", "Administrator privileges required", http.StatusForbidden)
}

func ErrNestedImpersonation() *AppError {
	return New("SES_004", "Already impersonating; return to your own session first", http.StatusConflict)
}

func ErrInvalidTarget() *AppError {
	return New("SES_005", "Invalid impersonation target", http.StatusBadRequest)
}

func ErrAccountBanned() *AppError {
	return New("SES_006", "Account is banned", http.StatusForbidden)
}

// ---- Ledger (LGR) ----

func ErrLedgerWriteFailed(err error) *AppError {
	return Wrap("LGR_001", "Balance change aborted", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrPersistence(err error) *AppError {
	return Wrap("SYS_001", "Persistence failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
