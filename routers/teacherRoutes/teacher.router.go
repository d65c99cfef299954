package teacherRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "madrasa/controllers/teacher"
	teacherValidator "madrasa/validators/teacher"
)

// SetupTeacherRoutes sets up the teacher analytics routes
func SetupTeacherRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewTeacherController(db)

	teacherGroup := app.Group("/api/teacher")
	teacherGroup.Get("/dashboard-stats", ctl.GetDashboardStats)
	teacherGroup.Get("/quizzes", ctl.GetTeacherQuizzes)
	teacherGroup.Get("/quiz-results/:quizId", teacherValidator.QuizID(), ctl.GetQuizResults)
	teacherGroup.Get("/attempt-details/:attemptId", teacherValidator.AttemptID(), ctl.GetAttemptDetails)
	teacherGroup.Get("/grades/:gradeId/students", teacherValidator.GradeID(), ctl.GetStudentsByGrade)
	teacherGroup.Get("/student-activity/:studentId", teacherValidator.StudentID(), ctl.GetStudentActivity)

	statsGroup := teacherGroup.Group("/stats")
	statsGroup.Get("/all-students", ctl.GetAllStudents)
	statsGroup.Get("/all-quizzes", ctl.GetAllQuizzes)
	statsGroup.Get("/today-activities", ctl.GetTodayActivities)
	statsGroup.Get("/performance-details", ctl.GetPerformanceDetails)
}
