package validation

import (
	"regexp"
	"strings"
	"time"

	"task-tracker/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	controlCharRegex *regexp.Regexp
	tagRegex         *regexp.Regexp
	config           *config.Config
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return NewValidatorWithConfig(nil)
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		controlCharRegex: regexp.MustCompile(`[\x00-\x1f\x7f]`),
		tagRegex:         regexp.MustCompile(`^[a-zA-Z0-9_-]+$`),
		config:           cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTitleLength checks if a title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	length := len(strings.TrimSpace(title))
	return length >= v.getTitleMinLength() && length <= v.getTitleMaxLength()
}

// IsValidTitle checks that a title carries no control characters.
// Newlines and tabs would break the single-line listing output.
func (v *Validator) IsValidTitle(title string) bool {
	return !v.controlCharRegex.MatchString(title)
}

// IsValidTag checks if a tag label uses only allowed characters
func (v *Validator) IsValidTag(tag string) bool {
	return v.tagRegex.MatchString(tag) && len(tag) <= v.getTagMaxLength()
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 10 years in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	tenYearsFromNow := now.AddDate(10, 0, 0)

	return t.After(tenYearsAgo) && t.Before(tenYearsFromNow)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getTitleMinLength returns configured minimum title length or default
func (v *Validator) getTitleMinLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMinLength
	}
	return 1
}

// getTitleMaxLength returns configured maximum title length or default
func (v *Validator) getTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255
}

// getTagMaxLength returns configured maximum tag length or default
func (v *Validator) getTagMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TagMaxLength
	}
	return 64
}
