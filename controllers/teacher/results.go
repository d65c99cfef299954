package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"madrasa/middleware"
	"madrasa/models"
	quizModels "madrasa/models/quiz"
)

// GetTeacherQuizzes lists every quiz with its grade level, newest first
// within a level
func (ctl *TeacherController) GetTeacherQuizzes(c *fiber.Ctx) error {
	type teacherQuizRow struct {
		ID             uint   `json:"id"`
		Title          string `json:"title"`
		QuizType       string `json:"quiz_type"`
		GradeLevelID   uint   `json:"grade_level_id"`
		GradeLevelName string `json:"grade_level_name"`
	}

	var rows []teacherQuizRow
	if err := ctl.DB.Model(&quizModels.Quiz{}).
		Select("quizzes.id, quizzes.title, quizzes.quiz_type, grade_levels.id AS grade_level_id, grade_levels.name AS grade_level_name").
		Joins("JOIN grade_levels ON grade_levels.id = quizzes.grade_id").
		Order("grade_levels.id asc, quizzes.id desc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching teacher quizzes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", rows)
}

// GetQuizResults lists all attempts for one quiz, most recent first
func (ctl *TeacherController) GetQuizResults(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	type quizResultRow struct {
		AttemptID    uint      `json:"attempt_id"`
		StudentName  string    `json:"student_name"`
		StudentEmail string    `json:"student_email"`
		Score        int       `json:"score"`
		StartTime    time.Time `json:"start_time"`
		EndTime      time.Time `json:"end_time"`
	}

	var rows []quizResultRow
	if err := ctl.DB.Model(&quizModels.QuizAttempt{}).
		Select("quiz_attempts.id AS attempt_id, students.name AS student_name, students.email AS student_email, quiz_attempts.score, quiz_attempts.start_time, quiz_attempts.end_time").
		Joins("JOIN students ON students.id = quiz_attempts.student_id").
		Where("quiz_attempts.quiz_id = ?", quizID).
		Order("quiz_attempts.end_time desc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching results for quiz %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz results!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz results fetched successfully!", rows)
}

// GetAttemptDetails returns the per-question breakdown of one attempt,
// including the selected and correct option texts
func (ctl *TeacherController) GetAttemptDetails(c *fiber.Ctx) error {
	attemptID := c.Locals("attemptID").(int)

	type attemptDetailRow struct {
		QuestionText   string  `json:"question_text"`
		Points         int     `json:"points"`
		AnswerText     *string `json:"answer_text"`
		FileURL        *string `json:"file_url"`
		SelectedOption *string `json:"selected_option"`
		CorrectOption  *string `json:"correct_option"`
	}

	var rows []attemptDetailRow
	if err := ctl.DB.Model(&quizModels.StudentAnswer{}).
		Select(`questions.question_text,
			questions.points,
			student_answers.answer_text,
			student_answers.file_url,
			selected_qo.option_text AS selected_option,
			correct_qo.option_text AS correct_option`).
		Joins("JOIN questions ON questions.id = student_answers.question_id").
		Joins("LEFT JOIN question_options selected_qo ON selected_qo.id = student_answers.selected_option_id").
		Joins("LEFT JOIN question_options correct_qo ON correct_qo.question_id = questions.id AND correct_qo.is_correct = ? AND correct_qo.deleted_at IS NULL", true).
		Where("student_answers.attempt_id = ?", attemptID).
		Order("questions.id asc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching details for attempt %d: %v", attemptID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempt details!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt details fetched successfully!", rows)
}

// GetStudentsByGrade lists the students enrolled in one grade level. Students
// reference their level by name through the academic stage field.
func (ctl *TeacherController) GetStudentsByGrade(c *fiber.Ctx) error {
	gradeID := c.Locals("gradeID").(int)

	type studentRow struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	var rows []studentRow
	if err := ctl.DB.Model(&models.Student{}).
		Select("students.id, students.name").
		Joins("JOIN grade_levels ON grade_levels.name = students.academic_stage").
		Where("grade_levels.id = ?", gradeID).
		Order("students.name asc").
		Scan(&rows).Error; err != nil {
		log.Printf("Error fetching students for grade %d: %v", gradeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", rows)
}
