package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" example:"1"`                                 // Internal identifier, never reused
	StudentID      string    `json:"student_id" example:"A10"`                       // External lookup key, unique
	Name           string    `json:"name" example:"Nguyen Van A"`                    // Full name
	Email          string    `json:"email" example:"a10@school.edu"`                 // Contact email
	Age            *int      `json:"age" example:"20"`                               // Optional
	Major          *string   `json:"major" example:"Computer Science"`               // Optional
	GPA            *float64  `json:"gpa" example:"3.45"`                             // Optional, NUMERIC(3,2)
	EnrollmentDate time.Time `json:"enrollment_date" example:"2024-09-01T00:00:00Z"` // Set by the store on insert
}

// StudentFields are the columns an update is allowed to overwrite.
// student_id, id and enrollment_date are never written by an update.
type StudentFields struct {
	Name  string
	Email string
	Age   *int
	Major *string
	GPA   *float64
}

// StudentFilter holds the optional substring filters of a list request.
// Empty values mean "no constraint".
type StudentFilter struct {
	StudentID string
	Name      string
}

// IsEmpty reports whether the filter constrains nothing.
func (f StudentFilter) IsEmpty() bool {
	return f.StudentID == "" && f.Name == ""
}
