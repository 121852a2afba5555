package validation

import (
	"time"

	"task-tracker/internal/config"
)

// TaskValidator provides validation for task-related input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator with configuration
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmedTitle := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmedTitle) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmedTitle) {
		validationError.AddInvalidLengthError("title", trimmedTitle,
			tv.validator.getTitleMinLength(), tv.validator.getTitleMaxLength())
	}

	if !tv.validator.IsValidTitle(trimmedTitle) {
		validationError.AddInvalidCharacterError("title", trimmedTitle)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTag validates a single tag label
func (tv *TaskValidator) ValidateTag(tag string) error {
	validationError := NewValidationError()

	trimmedTag := tv.validator.TrimAndValidateString(tag)

	if !tv.validator.IsNonEmptyString(trimmedTag) {
		validationError.AddRequiredError("tag")
		return validationError
	}

	if !tv.validator.IsValidTag(trimmedTag) {
		validationError.AddInvalidCharacterError("tag", trimmedTag)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateDueDate validates a due date for plausibility
func (tv *TaskValidator) ValidateDueDate(dueDate time.Time) error {
	if !tv.validator.IsReasonableDate(dueDate) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("due_date", dueDate,
			"date must be within ten years of today")
		return validationError
	}
	return nil
}

// ValidateID validates a task identifier reference from the CLI
func (tv *TaskValidator) ValidateID(id string) error {
	trimmedID := tv.validator.TrimAndValidateString(id)
	if !tv.validator.IsNonEmptyString(trimmedID) {
		validationError := NewValidationError()
		validationError.AddRequiredError("id")
		return validationError
	}
	return nil
}

// GetValidTitle returns the cleaned title after validation
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
