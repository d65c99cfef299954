package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa/middleware"
	"madrasa/models"
	quizModels "madrasa/models/quiz"
)

// TeacherController serves the teacher-facing analytics endpoints
type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// GetDashboardStats returns the aggregate counters shown on the teacher
// dashboard
func (ctl *TeacherController) GetDashboardStats(c *fiber.Ctx) error {
	var totalStudents int64
	if err := ctl.DB.Model(&models.Student{}).Where("is_teacher = ?", false).Count(&totalStudents).Error; err != nil {
		log.Printf("Error counting students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	var totalQuizzes int64
	if err := ctl.DB.Model(&quizModels.Quiz{}).Count(&totalQuizzes).Error; err != nil {
		log.Printf("Error counting quizzes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	// Average over all attempts, 0 when there are none
	var averagePerformance int64
	if err := ctl.DB.Model(&quizModels.QuizAttempt{}).
		Select("COALESCE(ROUND(AVG(score)), 0)::int").
		Scan(&averagePerformance).Error; err != nil {
		log.Printf("Error computing average performance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	var todayActivity int64
	if err := ctl.DB.Model(&models.ActivityLog{}).
		Where("activity_timestamp >= ?", time.Now().Add(-24*time.Hour)).
		Count(&todayActivity).Error; err != nil {
		log.Printf("Error counting today's activity: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_students":      totalStudents,
		"total_quizzes":       totalQuizzes,
		"average_performance": averagePerformance,
		"today_activity":      todayActivity,
	})
}

// GetAllStudents lists every registered student for the dashboard stat card
func (ctl *TeacherController) GetAllStudents(c *fiber.Ctx) error {
	type studentRow struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		AcademicStage string `json:"academic_stage"`
	}

	var rows []studentRow
	if err := ctl.DB.Model(&models.Student{}).
		Select("name, email, academic_stage").
		Where("is_teacher = ?", false).
		Order("name asc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching students list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students list!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", rows)
}

// GetAllQuizzes lists every quiz with its grade level name
func (ctl *TeacherController) GetAllQuizzes(c *fiber.Ctx) error {
	type quizRow struct {
		Title     string `json:"title"`
		GradeName string `json:"grade_name"`
	}

	var rows []quizRow
	if err := ctl.DB.Model(&quizModels.Quiz{}).
		Select("quizzes.title, grade_levels.name AS grade_name").
		Joins("JOIN grade_levels ON grade_levels.id = quizzes.grade_id").
		Order("grade_levels.id asc, quizzes.title asc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching all quizzes list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes list!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", rows)
}

// GetTodayActivities lists the last 24 hours of student activity
func (ctl *TeacherController) GetTodayActivities(c *fiber.Ctx) error {
	type activityRow struct {
		Name              string    `json:"name"`
		AcademicStage     string    `json:"academic_stage"`
		Details           string    `json:"details"`
		ActivityTimestamp time.Time `json:"activity_timestamp"`
	}

	var rows []activityRow
	if err := ctl.DB.Model(&models.ActivityLog{}).
		Select("students.name, students.academic_stage, activity_logs.details, activity_logs.activity_timestamp").
		Joins("JOIN students ON students.id = activity_logs.student_id").
		Where("activity_logs.activity_timestamp >= ?", time.Now().Add(-24*time.Hour)).
		Order("activity_logs.activity_timestamp desc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching today's activities: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch today's activities!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activities fetched successfully!", rows)
}

// GetPerformanceDetails returns one row per attempt with the achieved score
// and the quiz's maximum MCQ score
func (ctl *TeacherController) GetPerformanceDetails(c *fiber.Ctx) error {
	type performanceRow struct {
		StudentID          uint      `json:"student_id"`
		StudentName        string    `json:"student_name"`
		StudentGrade       string    `json:"student_grade"`
		QuizID             uint      `json:"quiz_id"`
		QuizTitle          string    `json:"quiz_title"`
		ScoreAchieved      int       `json:"score_achieved"`
		TotalPossibleScore *int      `json:"total_possible_score"`
		EndTime            time.Time `json:"end_time"`
	}

	var rows []performanceRow
	if err := ctl.DB.Model(&quizModels.QuizAttempt{}).
		Select(`students.id AS student_id,
			students.name AS student_name,
			students.academic_stage AS student_grade,
			quizzes.id AS quiz_id,
			quizzes.title AS quiz_title,
			quiz_attempts.score AS score_achieved,
			(SELECT SUM(points) FROM questions
				WHERE questions.quiz_id = quizzes.id
				AND questions.question_type = 'mcq'
				AND questions.deleted_at IS NULL) AS total_possible_score,
			quiz_attempts.end_time`).
		Joins("JOIN students ON students.id = quiz_attempts.student_id").
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Where("students.is_teacher = ?", false).
		Order("students.academic_stage asc, students.name asc, quiz_attempts.end_time asc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching performance details: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch performance details!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Performance details fetched successfully!", rows)
}
