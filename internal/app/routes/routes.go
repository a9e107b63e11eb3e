package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/unifiedacademics/uap-backend/internal/app/controllers"
	"github.com/unifiedacademics/uap-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	employeeController *controllers.EmployeeController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	staffController *controllers.StaffController,
	contactController *controllers.ContactController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	v1.POST("/contact", contactController.SubmitContactRequest)

	// --- Admin routes, all behind the session cookie ---
	admin := v1.Group("")
	admin.Use(sessionMiddleware.RequireSession())
	{
		admin.GET("/dashboard", dashboardController.GetCounts)

		employees := admin.Group("/employees")
		{
			employees.GET("", employeeController.ListEmployees)
			employees.POST("", employeeController.CreateEmployee)
			employees.GET("/:employeeId", employeeController.GetEmployee)
			employees.PUT("/:employeeId", employeeController.UpdateEmployee)
			employees.DELETE("/:employeeId", employeeController.DeleteEmployee)
			employees.POST("/:employeeId/reactivate", employeeController.ReactivateEmployee)
		}

		students := admin.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.POST("/import", studentController.ImportStudents)
			students.GET("/export", studentController.ExportStudents)
			students.GET("/:registrationNumber", studentController.GetStudent)
			students.PUT("/:registrationNumber", studentController.UpdateStudent)
			students.DELETE("/:registrationNumber", studentController.DeleteStudent)
		}

		teachers := admin.Group("/teachers")
		{
			teachers.GET("", teacherController.ListTeachers)
			teachers.POST("", teacherController.CreateTeacher)
			teachers.POST("/import", teacherController.ImportTeachers)
			teachers.GET("/export", teacherController.ExportTeachers)
			teachers.GET("/:registrationNumber", teacherController.GetTeacher)
			teachers.PUT("/:registrationNumber", teacherController.UpdateTeacher)
			teachers.DELETE("/:registrationNumber", teacherController.DeleteTeacher)
		}

		staff := admin.Group("/staff")
		{
			staff.GET("", staffController.ListStaff)
			staff.POST("", staffController.CreateStaff)
			staff.POST("/import", staffController.ImportStaff)
			staff.GET("/export", staffController.ExportStaff)
			staff.GET("/:employeeNumber", staffController.GetStaff)
			staff.PUT("/:employeeNumber", staffController.UpdateStaff)
			staff.DELETE("/:employeeNumber", staffController.DeleteStaff)
		}

		contactRequests := admin.Group("/contact-requests")
		{
			contactRequests.GET("", contactController.ListContactRequests)
			contactRequests.PUT("/:id/status", contactController.UpdateContactRequestStatus)
			contactRequests.DELETE("/:id", contactController.DeleteContactRequest)
		}
	}
}
