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

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be a positive number", http.StatusBadRequest)
}

func ErrMissingDonorEmail() *AppError {
	return New("VAL_002", "Donor email is required", http.StatusBadRequest)
}

func ErrNothingToTransfer() *AppError {
	return New("VAL_003", "Transaction has no observed paid amount to transfer", http.StatusBadRequest)
}

func ErrBelowMinimumWithdrawal() *AppError {
	return New("VAL_004", "Withdrawal amount is below the configured minimum", http.StatusBadRequest)
}

// Validation returns a generic 400 validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Configuration (CFG) ----

func ErrProviderNotConfigured() *AppError {
	return New("CFG_001", "Payment provider is not configured", http.StatusInternalServerError)
}

func ErrWalletNotConfigured() *AppError {
	return New("CFG_002", "No active custodial wallet is configured", http.StatusInternalServerError)
}

func ErrInvalidMnemonic() *AppError {
	return New("CFG_003", "Custodial wallet key material is not a valid mnemonic", http.StatusInternalServerError)
}

// ---- Provider (PRV) ----

func ErrProviderRejected(message string) *AppError {
	if message == "" {
		message = "Payment provider rejected the request"
	}
	return New("PRV_001", message, http.StatusInternalServerError)
}

func ErrProviderUnreachable(err error) *AppError {
	return Wrap("PRV_002", "Payment provider request failed", http.StatusInternalServerError, err)
}

// ---- Not Found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Transfer (TRF) ----

func ErrTransferFailed(err error) *AppError {
	return Wrap("TRF_001", "On-chain transfer failed", http.StatusInternalServerError, err)
}

func ErrAlreadyTransferred() *AppError {
	return New("TRF_002", "Transaction funds were already transferred", http.StatusConflict)
}

func ErrSettlementQueueFull() *AppError {
	return New("TRF_003", "Settlement queue is full, try again later", http.StatusServiceUnavailable)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}
