package controllers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa/config"
	"madrasa/middleware"
	"madrasa/models"
	quizModels "madrasa/models/quiz"
	"madrasa/utils"
)

// SubmissionPayload is the validated quiz submission as produced by the
// submit validator
type SubmissionPayload struct {
	QuizID    uint
	StudentID uint
	Answers   []SubmittedAnswer
	StartTime time.Time
}

// AnswerFileField is the multipart field name that carries an uploaded file
// for one question. The question ID inside the field name is the contract
// that associates a file with an answer.
func AnswerFileField(questionID uint) string {
	return fmt.Sprintf("question_%d_file", questionID)
}

// SubmitQuiz grades a submission and records the attempt with its answers.
//
// The attempt row and all answer rows are written in one transaction; any
// failure rolls the whole submission back. The activity-log append after
// commit is best-effort and never fails the response.
func (ctl *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	payload, ok := c.Locals("validatedSubmission").(*SubmissionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission payload!", nil)
	}

	var quizRecord quizModels.Quiz
	if err := ctl.DB.Where("id = ?", payload.QuizID).First(&quizRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		log.Printf("Error fetching quiz %d: %v", payload.QuizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	key, err := ctl.loadAnswerKey(payload.QuizID)
	if err != nil {
		log.Printf("Error loading answer key for quiz %d: %v", payload.QuizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	score, totalPossible := GradeSubmission(key, payload.Answers)

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission payload!", nil)
	}

	attempt := quizModels.QuizAttempt{
		QuizID:    payload.QuizID,
		StudentID: payload.StudentID,
		Score:     score,
		StartTime: payload.StartTime,
		EndTime:   time.Now(),
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		for i := range payload.Answers {
			answer := payload.Answers[i]
			row := quizModels.StudentAnswer{
				AttemptID:        attempt.ID,
				QuestionID:       answer.QuestionID,
				AnswerText:       answer.AnswerText,
				SelectedOptionID: answer.SelectedOptionID,
			}
			fileURL, err := ctl.saveAnswerFile(c, form, answer.QuestionID)
			if err != nil {
				return err
			}
			if fileURL != "" {
				row.FileURL = &fileURL
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Quiz submission failed for quiz %d student %d: %v", payload.QuizID, payload.StudentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while recording your answers!", nil)
	}

	// Best-effort: the submission is already committed, a missing activity
	// entry must not turn it into a failure.
	activity := models.ActivityLog{
		StudentID:         payload.StudentID,
		ActivityType:      models.ActivityTypeQuizSubmit,
		Details:           quizRecord.Title,
		ActivityTimestamp: time.Now(),
	}
	if err := ctl.DB.Create(&activity).Error; err != nil {
		log.Printf("Failed to log quiz_submit activity for student %d: %v", payload.StudentID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your answers were submitted successfully!", fiber.Map{
		"score":              score,
		"totalPossibleScore": totalPossible,
	})
}

// loadAnswerKey builds the grading key for a quiz in a single query over its
// MCQ questions and their correct options.
func (ctl *QuizController) loadAnswerKey(quizID uint) (AnswerKey, error) {
	type keyRow struct {
		QuestionID      uint
		Points          int
		CorrectOptionID *uint
	}

	var rows []keyRow
	err := ctl.DB.Model(&quizModels.Question{}).
		Select("questions.id AS question_id, questions.points, question_options.id AS correct_option_id").
		Joins("LEFT JOIN question_options ON question_options.question_id = questions.id AND question_options.is_correct = ? AND question_options.deleted_at IS NULL", true).
		Where("questions.quiz_id = ? AND questions.question_type = ?", quizID, quizModels.QuestionTypeMCQ).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	key := make(AnswerKey, len(rows))
	for _, row := range rows {
		if row.CorrectOptionID == nil {
			// no option flagged correct — counts toward the maximum, no credit
			key[row.QuestionID] = AnswerKeyEntry{Points: row.Points}
			continue
		}
		if _, seen := key[row.QuestionID]; seen {
			// several options flagged correct — same treatment
			key[row.QuestionID] = AnswerKeyEntry{Points: row.Points}
			continue
		}
		key[row.QuestionID] = AnswerKeyEntry{Points: row.Points, CorrectOptionID: *row.CorrectOptionID}
	}
	return key, nil
}

// saveAnswerFile stores the uploaded file for a question, if the submission
// carried one, and returns its public URL.
func (ctl *QuizController) saveAnswerFile(c *fiber.Ctx, form *multipart.Form, questionID uint) (string, error) {
	files := form.File[AnswerFileField(questionID)]
	if len(files) == 0 {
		return "", nil
	}
	filename, err := utils.SaveUploadedFile(c, files[0], config.AppConfig.UploadDir)
	if err != nil {
		return "", err
	}
	return utils.GetFileURL(filename), nil
}
