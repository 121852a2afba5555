package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewTaskNotFoundError creates a new not found error for a task identifier
func NewTaskNotFoundError(id string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("task not found: %s", id),
		Code:    "TASK_NOT_FOUND",
		Context: map[string]interface{}{
			"id": id,
		},
	}
}

// NewInvalidStatusError creates an error for a status value outside the closed set
func NewInvalidStatusError(value string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidStatus,
		Message: fmt.Sprintf("invalid status: %q (valid: todo, in_progress, review, done)", value),
		Code:    "INVALID_STATUS",
		Context: map[string]interface{}{
			"value": value,
		},
	}
}

// NewInvalidPriorityError creates an error for a priority value outside the closed set
func NewInvalidPriorityError(value string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidPriority,
		Message: fmt.Sprintf("invalid priority: %q (valid: 1-4 or low, medium, high, urgent)", value),
		Code:    "INVALID_PRIORITY",
		Context: map[string]interface{}{
			"value": value,
		},
	}
}

// NewCorruptStoreError creates an error for persisted data that fails to parse
// or violates task invariants on load
func NewCorruptStoreError(detail string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptStore,
		Message: fmt.Sprintf("task store is corrupt: %s", detail),
		Code:    "CORRUPT_STORE",
		Cause:   cause,
		Context: map[string]interface{}{
			"detail": detail,
		},
	}
}

// NewWriteFailureError creates an error for a failed persistence write
func NewWriteFailureError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeWriteFailure,
		Message: fmt.Sprintf("failed to write task store: %s", path),
		Code:    "WRITE_FAILURE",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewStorageError creates a generic storage error for backend operations
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidStatus, ErrorTypeInvalidPriority:
			return appErr.Message
		case ErrorTypeCorruptStore:
			return appErr.Message + " (refusing to proceed; fix or remove the store file)"
		case ErrorTypeWriteFailure:
			return "Saving tasks failed; the change was not persisted. Please retry."
		case ErrorTypeStorage:
			return "A storage error occurred. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidStatus, ErrorTypeInvalidPriority:
			return false // user errors, not system errors
		case ErrorTypeCorruptStore, ErrorTypeWriteFailure, ErrorTypeStorage:
			return true
		default:
			return true
		}
	}
	return true
}
