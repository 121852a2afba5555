package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"InvalidStatus", ErrorTypeInvalidStatus, "invalid_status"},
		{"InvalidPriority", ErrorTypeInvalidPriority, "invalid_priority"},
		{"CorruptStore", ErrorTypeCorruptStore, "corrupt_store"},
		{"WriteFailure", ErrorTypeWriteFailure, "write_failure"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestNewTaskNotFoundError(t *testing.T) {
	err := NewTaskNotFoundError("abc123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewTaskNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: abc123" {
		t.Errorf("NewTaskNotFoundError message = %v, want %v", err.Message, "task not found: abc123")
	}
	if err.Code != "TASK_NOT_FOUND" {
		t.Errorf("NewTaskNotFoundError code = %v, want %v", err.Code, "TASK_NOT_FOUND")
	}

	id, ok := err.GetContext("id")
	if !ok || id != "abc123" {
		t.Errorf("NewTaskNotFoundError should set id context")
	}
}

func TestNewInvalidStatusError(t *testing.T) {
	err := NewInvalidStatusError("bogus")

	if err.Type != ErrorTypeInvalidStatus {
		t.Errorf("NewInvalidStatusError type = %v, want %v", err.Type, ErrorTypeInvalidStatus)
	}
	if err.Code != "INVALID_STATUS" {
		t.Errorf("NewInvalidStatusError code = %v, want %v", err.Code, "INVALID_STATUS")
	}

	value, ok := err.GetContext("value")
	if !ok || value != "bogus" {
		t.Errorf("NewInvalidStatusError should set value context")
	}
}

func TestNewInvalidPriorityError(t *testing.T) {
	err := NewInvalidPriorityError("9")

	if err.Type != ErrorTypeInvalidPriority {
		t.Errorf("NewInvalidPriorityError type = %v, want %v", err.Type, ErrorTypeInvalidPriority)
	}
	if err.Code != "INVALID_PRIORITY" {
		t.Errorf("NewInvalidPriorityError code = %v, want %v", err.Code, "INVALID_PRIORITY")
	}
}

func TestNewCorruptStoreError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewCorruptStoreError("tasks.json", cause)

	if err.Type != ErrorTypeCorruptStore {
		t.Errorf("NewCorruptStoreError type = %v, want %v", err.Type, ErrorTypeCorruptStore)
	}
	if err.Cause != cause {
		t.Errorf("NewCorruptStoreError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewWriteFailureError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewWriteFailureError("/tmp/tasks.json", cause)

	if err.Type != ErrorTypeWriteFailure {
		t.Errorf("NewWriteFailureError type = %v, want %v", err.Type, ErrorTypeWriteFailure)
	}
	if err.Cause != cause {
		t.Errorf("NewWriteFailureError cause = %v, want %v", err.Cause, cause)
	}

	path, ok := err.GetContext("path")
	if !ok || path != "/tmp/tasks.json" {
		t.Errorf("NewWriteFailureError should set path context")
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "save failed",
				Cause:   errors.New("timeout"),
			},
			expected: "storage: save failed (caused by: timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypeStorage,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
}

func TestIsErrorType(t *testing.T) {
	appError := NewInvalidStatusError("bogus")
	regularError := errors.New("regular error")

	if !IsErrorType(appError, ErrorTypeInvalidStatus) {
		t.Errorf("IsErrorType should return true for matching type")
	}

	if IsErrorType(appError, ErrorTypeNotFound) {
		t.Errorf("IsErrorType should return false for different type")
	}

	if IsErrorType(regularError, ErrorTypeInvalidStatus) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Not found error",
			err:      NewTaskNotFoundError("abc123"),
			expected: "task not found: abc123",
		},
		{
			name:     "Write failure error",
			err:      NewWriteFailureError("/tmp/tasks.json", errors.New("disk full")),
			expected: "Saving tasks failed; the change was not persisted. Please retry.",
		},
		{
			name:     "Storage error",
			err:      NewStorageError("open database", errors.New("locked")),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Invalid status error", NewInvalidStatusError("bogus"), false},
		{"Invalid priority error", NewInvalidPriorityError("9"), false},
		{"Not found error", NewTaskNotFoundError("abc"), false},
		{"Corrupt store error", NewCorruptStoreError("tasks.json", nil), true},
		{"Write failure error", NewWriteFailureError("tasks.json", nil), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
