package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

// Column limits of the students table
const (
	StudentIDMaxLength = 20
	NameMaxLength      = 100
	EmailMaxLength     = 100
	MajorMaxLength     = 100
)

// StringRule checks a text value against a column definition
type StringRule struct {
	Field    string
	MaxLen   int
	Required bool
}

// NewStringRule creates a required rule for field
func NewStringRule(field string, maxLen int) *StringRule {
	return &StringRule{
		Field:    field,
		MaxLen:   maxLen,
		Required: true,
	}
}

// WithRequired sets if field is required
func (r *StringRule) WithRequired(required bool) *StringRule {
	r.Required = required
	return r
}

// Check returns a validation error, or nil when value fits the column.
// Required values must contain something besides whitespace; length is counted in characters.
func (r *StringRule) Check(value string) error {
	if r.Required && strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError("%s is required", r.Field)
	}

	if r.MaxLen > 0 && utf8.RuneCountInString(value) > r.MaxLen {
		return apperrors.NewValidationError("%s must be at most %d characters", r.Field, r.MaxLen)
	}

	return nil
}

// Column rules shared by create and update
var (
	StudentIDRule = NewStringRule("student_id", StudentIDMaxLength)
	NameRule      = NewStringRule("name", NameMaxLength)
	EmailRule     = NewStringRule("email", EmailMaxLength)
	MajorRule     = NewStringRule("major", MajorMaxLength).WithRequired(false)
)
