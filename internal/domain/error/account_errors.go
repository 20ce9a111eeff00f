// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is absent or not owned by the caller.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameExists is returned when attempting to create an account with an existing name.
	ErrAccountNameExists = errors.New("account name already exists")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound    AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameExists  AccountErrorCode = "ACC-010002"
	ErrCodeAccountNameTooLong AccountErrorCode = "ACC-010003"
	ErrCodeMissingAccountName AccountErrorCode = "ACC-010004"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
