package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

func TestStringRuleCheck(t *testing.T) {
	tests := []struct {
		name    string
		rule    *StringRule
		value   string
		wantErr string
	}{
		{name: "required present", rule: NameRule, value: "An"},
		{name: "required empty", rule: NameRule, value: "", wantErr: "name is required"},
		{name: "required whitespace", rule: EmailRule, value: "   ", wantErr: "email is required"},
		{name: "optional empty", rule: MajorRule, value: ""},
		{name: "at the limit", rule: StudentIDRule, value: strings.Repeat("x", 20)},
		{name: "over the limit", rule: StudentIDRule, value: strings.Repeat("x", 21), wantErr: "student_id must be at most 20 characters"},
		{name: "multibyte counts characters", rule: StudentIDRule, value: strings.Repeat("é", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Check(tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Check(%q) unexpected error: %v", tt.value, err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Check(%q) expected error %q", tt.value, tt.wantErr)
			}
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error should wrap ErrValidationFailed, got %v", err)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}
