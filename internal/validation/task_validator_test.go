package validation

import (
	"strings"
	"testing"
	"time"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title", title: "Write report"},
		{name: "single character", title: "x"},
		{name: "punctuation allowed", title: "Fix bug #42 (urgent!)"},
		{name: "empty", title: "", wantErr: true},
		{name: "whitespace only", title: "   ", wantErr: true},
		{name: "over maximum length", title: strings.Repeat("a", 300), wantErr: true},
		{name: "embedded newline", title: "line one\nline two", wantErr: true},
		{name: "embedded tab", title: "col\tcol", wantErr: true},
	}

	validator := NewTaskValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.title)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateTitle(%q) expected error, got nil", tt.title)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateTitle(%q) unexpected error: %v", tt.title, err)
			}
		})
	}
}

func TestTaskValidator_ValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{name: "simple tag", tag: "work"},
		{name: "tag with hyphen", tag: "follow-up"},
		{name: "tag with underscore", tag: "q3_planning"},
		{name: "empty", tag: "", wantErr: true},
		{name: "whitespace inside", tag: "two words", wantErr: true},
		{name: "marker characters", tag: "@home", wantErr: true},
		{name: "over maximum length", tag: strings.Repeat("a", 100), wantErr: true},
	}

	validator := NewTaskValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTag(tt.tag)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateTag(%q) expected error, got nil", tt.tag)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateTag(%q) unexpected error: %v", tt.tag, err)
			}
		})
	}
}

func TestTaskValidator_ValidateDueDate(t *testing.T) {
	validator := NewTaskValidator()

	if err := validator.ValidateDueDate(time.Now().AddDate(0, 1, 0)); err != nil {
		t.Errorf("ValidateDueDate(next month) unexpected error: %v", err)
	}
	if err := validator.ValidateDueDate(time.Now().AddDate(-20, 0, 0)); err == nil {
		t.Errorf("ValidateDueDate(twenty years ago) expected error, got nil")
	}
	if err := validator.ValidateDueDate(time.Now().AddDate(50, 0, 0)); err == nil {
		t.Errorf("ValidateDueDate(fifty years ahead) expected error, got nil")
	}
}

func TestValidationError_Messages(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Errorf("new ValidationError should have no errors")
	}

	ve.AddRequiredError("title")
	if !ve.HasErrors() {
		t.Errorf("ValidationError should report errors after AddRequiredError")
	}
	if ve.GetUserFriendlyMessage() != "title is required" {
		t.Errorf("GetUserFriendlyMessage() = %q, want %q", ve.GetUserFriendlyMessage(), "title is required")
	}

	ve.AddInvalidCharacterError("tag", "@home")
	if !strings.Contains(ve.Error(), "multiple validation errors") {
		t.Errorf("Error() with two errors should mention multiple validation errors, got %q", ve.Error())
	}
}
