// Package errors provides custom error types for the payday API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Bill errors.
var (
	ErrBillNotFound  = &AppError{Code: "BILL_NOT_FOUND", Message: "Bill not found", StatusCode: http.StatusNotFound}
	ErrInvalidDueDay = &AppError{Code: "INVALID_DUE_DAY", Message: "Due day must be between 1 and 31", StatusCode: http.StatusBadRequest}
)

// Paycheck errors.
var (
	ErrPaycheckNotFound = &AppError{Code: "PAYCHECK_NOT_FOUND", Message: "Paycheck not found", StatusCode: http.StatusNotFound}
)

// Pay schedule errors.
var (
	ErrPayScheduleNotFound = &AppError{Code: "PAY_SCHEDULE_NOT_FOUND", Message: "No pay schedule has been saved", StatusCode: http.StatusNotFound}
	ErrAnchorNotFriday     = &AppError{Code: "ANCHOR_NOT_FRIDAY", Message: "Anchor payday must fall on a Friday", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Import pipeline errors.
var (
	ErrEmptyImport    = &AppError{Code: "EMPTY_IMPORT", Message: "The uploaded file has no header row", StatusCode: http.StatusBadRequest}
	ErrMissingColumns = &AppError{Code: "MISSING_COLUMNS", Message: "Required columns date, description, and amount were not found", StatusCode: http.StatusBadRequest}
	ErrNoValidRows    = &AppError{Code: "NO_VALID_ROWS", Message: "No rows could be parsed from the uploaded file", StatusCode: http.StatusBadRequest}
	ErrNothingStaged  = &AppError{Code: "NOTHING_STAGED", Message: "No import is staged for this session", StatusCode: http.StatusBadRequest}
)
