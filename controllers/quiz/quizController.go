package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa/middleware"
	quizModels "madrasa/models/quiz"
)

// QuizController serves quiz reads and submissions. The database handle is
// injected so lifecycle stays with main.
type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

type quizSummary struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	QuizType        string `json:"quiz_type"`
	DurationMinutes int    `json:"duration_minutes"`
}

// GetQuizzesByLevel lists a grade level's quizzes grouped by quiz type
func (ctl *QuizController) GetQuizzesByLevel(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(int)

	var quizzes []quizModels.Quiz
	if err := ctl.DB.Where("grade_id = ?", levelID).Order("id asc").Find(&quizzes).Error; err != nil {
		log.Printf("Error fetching quizzes for level %d: %v", levelID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	grouped := map[string][]quizSummary{
		quizModels.QuizTypeFinal:   {},
		quizModels.QuizTypeMonthly: {},
		quizModels.QuizTypeQuick:   {},
	}
	for _, q := range quizzes {
		if _, ok := grouped[q.QuizType]; !ok {
			continue
		}
		grouped[q.QuizType] = append(grouped[q.QuizType], quizSummary{
			ID:              q.ID,
			Title:           q.Title,
			QuizType:        q.QuizType,
			DurationMinutes: q.DurationMinutes,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", grouped)
}

type questionOptionView struct {
	ID         uint   `json:"id"`
	OptionText string `json:"option_text"`
}

type questionView struct {
	ID           uint                 `json:"id"`
	QuestionText string               `json:"question_text"`
	QuestionType string               `json:"question_type"`
	Points       int                  `json:"points"`
	Options      []questionOptionView `json:"options,omitempty"`
}

// GetQuizDetails returns a quiz with its questions and, for MCQ questions,
// their options. Correctness flags are never exposed here.
func (ctl *QuizController) GetQuizDetails(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	var quizRecord quizModels.Quiz
	if err := ctl.DB.Where("id = ?", quizID).First(&quizRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		log.Printf("Error fetching quiz %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	var questions []quizModels.Question
	if err := ctl.DB.Where("quiz_id = ?", quizID).Order("id asc").Find(&questions).Error; err != nil {
		log.Printf("Error fetching questions for quiz %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	views := make([]questionView, len(questions))
	for i, q := range questions {
		view := questionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Points:       q.Points,
		}
		if q.QuestionType == quizModels.QuestionTypeMCQ {
			var options []quizModels.QuestionOption
			if err := ctl.DB.Where("question_id = ?", q.ID).Order("id asc").Find(&options).Error; err != nil {
				log.Printf("Error fetching options for question %d: %v", q.ID, err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
			}
			view.Options = make([]questionOptionView, len(options))
			for j, opt := range options {
				view.Options[j] = questionOptionView{ID: opt.ID, OptionText: opt.OptionText}
			}
		}
		views[i] = view
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz": fiber.Map{
			"id":               quizRecord.ID,
			"title":            quizRecord.Title,
			"duration_minutes": quizRecord.DurationMinutes,
		},
		"questions": views,
	})
}
