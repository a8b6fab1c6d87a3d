package dto

import (
	"encoding/json"
	"testing"
)

func TestLooseStringUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    LooseString
		wantErr bool
	}{
		{name: "string", body: `{"age":"20"}`, want: "20"},
		{name: "number", body: `{"age":20}`, want: "20"},
		{name: "decimal", body: `{"age":3.45}`, want: "3.45"},
		{name: "negative", body: `{"age":-1}`, want: "-1"},
		{name: "null", body: `{"age":null}`, want: ""},
		{name: "empty string", body: `{"age":""}`, want: ""},
		{name: "false", body: `{"age":false}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "object", body: `{"age":{"x":1}}`, wantErr: true},
		{name: "true", body: `{"age":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Age LooseString `json:"age"`
			}
			err := json.Unmarshal([]byte(tt.body), &v)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %q", v.Age)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Age != tt.want {
				t.Errorf("Age = %q, want %q", v.Age, tt.want)
			}
		})
	}
}

func TestUpdateRequestIgnoresStudentID(t *testing.T) {
	var req UpdateStudentRequest
	body := `{"student_id":"HACK","name":"Ann","email":"ann@x.io"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Ann" || req.Email != "ann@x.io" {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestNewErrorResponse(t *testing.T) {
	if got := NewErrorResponse("").Error; got == "" {
		t.Error("empty message must be replaced")
	}
	if got := NewErrorResponse(MessageStudentNotFound).Error; got != "Student not found" {
		t.Errorf("Error = %q", got)
	}
}
