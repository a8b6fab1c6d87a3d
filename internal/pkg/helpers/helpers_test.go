package helpers

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullableArg(t *testing.T) {
	if got := NullableArg[int](nil); got != nil {
		t.Errorf("NullableArg(nil) = %v, want nil", got)
	}

	age := 21
	if got := NullableArg(&age); got != 21 {
		t.Errorf("NullableArg(&21) = %v, want 21", got)
	}

	major := "Physics"
	if got := NullableArg(&major); got != "Physics" {
		t.Errorf("NullableArg(&major) = %v, want Physics", got)
	}
}

func TestNullConversions(t *testing.T) {
	if StringPtr(sql.NullString{}) != nil {
		t.Error("invalid NullString should map to nil")
	}
	if s := StringPtr(sql.NullString{String: "Math", Valid: true}); s == nil || *s != "Math" {
		t.Errorf("StringPtr = %v, want Math", s)
	}

	if IntPtr(sql.NullInt64{}) != nil {
		t.Error("invalid NullInt64 should map to nil")
	}
	if i := IntPtr(sql.NullInt64{Int64: 19, Valid: true}); i == nil || *i != 19 {
		t.Errorf("IntPtr = %v, want 19", i)
	}

	if Float64Ptr(sql.NullFloat64{}) != nil {
		t.Error("invalid NullFloat64 should map to nil")
	}
	if f := Float64Ptr(sql.NullFloat64{Float64: 3.5, Valid: true}); f == nil || *f != 3.5 {
		t.Errorf("Float64Ptr = %v, want 3.5", f)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "30m", want: 30 * time.Minute},
		{in: "", want: time.Hour},
		{in: "not-a-duration", want: time.Hour},
	}

	for _, tt := range tests {
		if got := ParseDuration(tt.in, time.Hour); got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
