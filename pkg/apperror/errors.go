package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError so callers can react without parsing codes.
type Kind string

const (
	KindValidation              Kind = "validation"
	KindNotFound                Kind = "not_found"
	KindConflict                Kind = "conflict"
	KindExternalService         Kind = "external_service"
	KindDatastore               Kind = "datastore"
	KindCodeGenerationExhausted Kind = "code_generation_exhausted"
	KindUnauthorized            Kind = "unauthorized"
	KindRateLimited             Kind = "rate_limited"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"-"`
	Retryable  bool   `json:"-"`
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
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Kind:       kind,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// IsKind reports whether err (or anything it wraps) is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsRetryable reports whether the caller may retry the same request.
func IsRetryable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}
	return false
}

// ---- Ledger (LDG) ----

// Validation returns an LDG_001 validation error.
func Validation(message string) *AppError {
	return New(KindValidation, "LDG_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return Validation("amount must be a positive decimal with at most 18 fractional digits")
}

func ErrInvalidStatus(status string) *AppError {
	return Validation(fmt.Sprintf("invalid donation status %q", status))
}

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "LDG_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrTerminalStatus(current string) *AppError {
	return New(KindConflict, "LDG_003", fmt.Sprintf("donation is already %s", current), http.StatusConflict)
}

func ErrConflict(message string) *AppError {
	return New(KindConflict, "LDG_003", message, http.StatusConflict)
}

func ErrCodeGenerationExhausted(attempts int) *AppError {
	return New(KindCodeGenerationExhausted, "LDG_004",
		fmt.Sprintf("could not issue a unique referral code after %d attempts", attempts),
		http.StatusServiceUnavailable)
}

// ---- External collaborators (EXT) ----

func ErrChainTransactionFailed() *AppError {
	return New(KindValidation, "EXT_002", "Transaction failed on blockchain", http.StatusUnprocessableEntity)
}

func ErrExternalService(service string, err error) *AppError {
	e := Wrap(KindExternalService, "EXT_001", fmt.Sprintf("%s unavailable", service), http.StatusServiceUnavailable, err)
	e.Retryable = true
	return e
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New(KindUnauthorized, "SEC_001", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New(KindUnauthorized, "SEC_002", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New(KindUnauthorized, "SEC_003", "Nonce has already been used", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(KindUnauthorized, "SEC_004", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimited, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrDatastore wraps a persistence failure. Transient by default.
func ErrDatastore(err error) *AppError {
	e := Wrap(KindDatastore, "SYS_001", "Internal database error", http.StatusInternalServerError, err)
	e.Retryable = true
	return e
}

// InternalError wraps an unexpected error as a SYS_000 error.
func InternalError(err error) *AppError {
	return Wrap(KindDatastore, "SYS_000", "Internal server error", http.StatusInternalServerError, err)
}
