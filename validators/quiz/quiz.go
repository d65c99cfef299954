package quizValidator

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	quizControllers "madrasa/controllers/quiz"
	"madrasa/middleware"
)

var validate = validator.New()

// LevelID validates the :levelId path parameter
func LevelID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("levelId")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid level ID!", nil)
		}
		c.Locals("levelID", id)
		return c.Next()
	}
}

// QuizID validates the :quizId path parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("quizId")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}

type submissionFields struct {
	StudentID string `validate:"required,number"`
	Answers   string `validate:"required"`
	StartTime string `validate:"required,number"`
}

// SubmitQuiz validates the multipart submission payload. The database is
// never touched for a payload that fails here.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := strconv.Atoi(strings.TrimSpace(c.Params("quizId")))
		if err != nil || quizID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}

		fields := submissionFields{
			StudentID: strings.TrimSpace(c.FormValue("studentId")),
			Answers:   strings.TrimSpace(c.FormValue("answers")),
			StartTime: strings.TrimSpace(c.FormValue("startTime")),
		}
		if err := validate.Struct(&fields); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing submission fields!", nil)
		}

		studentID, err := strconv.Atoi(fields.StudentID)
		if err != nil || studentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
		}

		var answers []quizControllers.SubmittedAnswer
		if err := json.Unmarshal([]byte(fields.Answers), &answers); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
		}
		for _, answer := range answers {
			if answer.QuestionID == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
			}
		}

		startMillis, err := strconv.ParseInt(fields.StartTime, 10, 64)
		if err != nil || startMillis < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid start time!", nil)
		}

		c.Locals("validatedSubmission", &quizControllers.SubmissionPayload{
			QuizID:    uint(quizID),
			StudentID: uint(studentID),
			Answers:   answers,
			StartTime: time.UnixMilli(startMillis),
		})
		return c.Next()
	}
}
