// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetPeriodNotFound is returned when a budget period is absent for the requested month.
	ErrBudgetPeriodNotFound = errors.New("budget period not found")

	// ErrInvalidAssignmentAmount is returned when an assignment request is negative.
	ErrInvalidAssignmentAmount = errors.New("assignment amount must not be negative")

	// ErrInsufficientFunds is returned when an assignment exceeds the unassigned pool.
	ErrInsufficientFunds = errors.New("assignment exceeds available to budget")

	// ErrInvalidMonth is returned when a month key is malformed.
	ErrInvalidMonth = errors.New("invalid month format")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAssignmentAmount BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidMonth            BudgetErrorCode = "BGT-010002"
	ErrCodeBudgetPeriodNotFound    BudgetErrorCode = "BGT-010003"

	// Business-rule rejections (02XXXX)
	ErrCodeInsufficientFunds BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
