package dto

// CreateStudentRequest is the body of POST /api/students (JSON or form encoded)
type CreateStudentRequest struct {
	StudentID string      `json:"student_id" form:"student_id" binding:"required" example:"A10"`
	Name      string      `json:"name" form:"name" binding:"required" example:"Nguyen Van A"`
	Email     string      `json:"email" form:"email" binding:"required" example:"a10@school.edu"`
	Age       LooseString `json:"age" form:"age" swaggertype:"string" example:"20"`
	Major     LooseString `json:"major" form:"major" swaggertype:"string" example:"Computer Science"`
	GPA       LooseString `json:"gpa" form:"gpa" swaggertype:"string" example:"3.45"`
}

// UpdateStudentRequest is the body of PUT /api/students/:id.
// There is no student_id field: the path value selects the row and it is never rewritten.
type UpdateStudentRequest struct {
	Name  string      `json:"name" form:"name" binding:"required" example:"Nguyen Van A"`
	Email string      `json:"email" form:"email" binding:"required" example:"a10@school.edu"`
	Age   LooseString `json:"age" form:"age" swaggertype:"string" example:"21"`
	Major LooseString `json:"major" form:"major" swaggertype:"string" example:"Mathematics"`
	GPA   LooseString `json:"gpa" form:"gpa" swaggertype:"string" example:"3.60"`
}

// StudentSearchQuery binds the optional substring filters of GET /api/students
type StudentSearchQuery struct {
	ID   string `form:"id"`
	Name string `form:"name"`
}
