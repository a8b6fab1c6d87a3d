package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/app/services"
	"github.com/yigit/studentdesk/internal/middleware"
)

// StudentController handles the student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents lists students, optionally filtered by substrings of student_id and name
// @Summary List or search students
// @Description Returns every student, or those whose student_id and/or name contain the given values (case-sensitive, combined with AND), newest enrollment first
// @Tags students
// @Produce json
// @Param id query string false "Substring of student_id"
// @Param name query string false "Substring of name"
// @Success 200 {array} models.Student "Matching students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var query dto.StudentSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, err := c.studentService.ListStudents(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent retrieves a student by student_id
// @Summary Get a student
// @Description Retrieves the student whose student_id equals the path value
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student "Student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent handles student creation
// @Summary Create a student
// @Description Creates a student; age, major and gpa are optional and stored as null when empty
// @Tags students
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.SuccessResponse "Student created successfully"
// @Failure 500 {object} dto.ErrorResponse "Invalid data, duplicate student_id or store failure"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.studentService.CreateStudent(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: dto.MessageStudentCreated})
}

// UpdateStudent overwrites name, email, age, major and gpa of a student
// @Summary Update a student
// @Description Overwrites the mutable fields of the student with the given student_id; student_id and enrollment_date never change
// @Tags students
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "New field values"
// @Success 200 {object} dto.SuccessResponse "Student updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	affected, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if affected == 0 {
		middleware.HandleNotFound(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: dto.MessageStudentUpdated})
}

// DeleteStudent permanently removes a student
// @Summary Delete a student
// @Description Deletes the student with the given student_id
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	affected, err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if affected == 0 {
		middleware.HandleNotFound(ctx)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: dto.MessageStudentDeleted})
}
