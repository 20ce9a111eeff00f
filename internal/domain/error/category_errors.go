// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is absent or not owned by the caller.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryOverextended is returned when a spend would exceed the category's available balance.
	ErrCategoryOverextended = errors.New("spend exceeds category availability")

	// ErrCategoryInUse is returned when deleting a category that transactions still reference.
	ErrCategoryInUse = errors.New("category is referenced by transactions")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidCategoryMonth  CategoryErrorCode = "CAT-010005"

	// Business-rule rejections (02XXXX)
	ErrCodeCategoryOverextended CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryInUse        CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
