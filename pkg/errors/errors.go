package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrLoanNotFound     = errors.New("loan not found")
	ErrInvalidHorizon   = errors.New("horizon must be a positive integer")
	ErrInvalidDate      = errors.New("invalid date")
	ErrReminderNotFound = errors.New("reminder flag not found")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeLoanNotFound     = "LOAN_NOT_FOUND"
	ErrCodeInvalidHorizon   = "INVALID_HORIZON"
	ErrCodeInvalidDate      = "INVALID_DATE"
	ErrCodeReminderNotFound = "REMINDER_NOT_FOUND"
	ErrCodeDatabaseError    = "DATABASE_ERROR"
	ErrCodeCacheError       = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapLoanNotFound(loanID int64) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanNotFound,
		fmt.Sprintf("Loan with ID %d not found", loanID),
		ErrLoanNotFound,
	)
}

func WrapInvalidHorizon(raw string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidHorizon,
		fmt.Sprintf("Invalid horizon %q", raw),
		ErrInvalidHorizon,
	)
}

func WrapInvalidDate(raw string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDate,
		fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", raw),
		ErrInvalidDate,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
