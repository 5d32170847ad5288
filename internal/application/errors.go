package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBankContractViolation means the bank client returned neither a response nor an error.
var ErrBankContractViolation = errors.New("both response and error from acquiring bank are nil")

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodePaymentNotFound = "PAYMENT_NOT_FOUND"
)

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewPaymentNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    "Payment not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for completion",
		HTTPStatus: http.StatusRequestTimeout,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// BankError describes a failed exchange with the acquiring bank.
// StatusCode is 0 when no HTTP response was received.
type BankError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *BankError) Error() string {
	return fmt.Sprintf("bank error (status: %d): %s", e.StatusCode, e.Message)
}

func (e *BankError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the bank explicitly said it is temporarily unavailable.
func (e *BankError) IsRetryable() bool {
	switch e.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}
