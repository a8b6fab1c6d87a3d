package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/controllers"
)

// SetupRouter configures the student API routes; middlewares run before every /api handler
func SetupRouter(router *gin.Engine, studentController *controllers.StudentController, middlewares ...gin.HandlerFunc) {
	api := router.Group("/api", middlewares...)

	students := api.Group("/students")
	{
		students.GET("", studentController.ListStudents)      // list all, or search with ?id= and ?name=
		students.GET("/:id", studentController.GetStudent)    // exact student_id
		students.POST("", studentController.CreateStudent)    // JSON or form body
		students.PUT("/:id", studentController.UpdateStudent) // student_id is never rewritten
		students.DELETE("/:id", studentController.DeleteStudent)
	}
}
