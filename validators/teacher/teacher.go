package teacherValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"madrasa/middleware"
)

func paramID(c *fiber.Ctx, name string) (int, bool) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GradeID validates the :gradeId path parameter
func GradeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "gradeId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid grade ID!", nil)
		}
		c.Locals("gradeID", id)
		return c.Next()
	}
}

// StudentID validates the :studentId path parameter
func StudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "studentId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
		}
		c.Locals("studentID", id)
		return c.Next()
	}
}

// QuizID validates the :quizId path parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}

// AttemptID validates the :attemptId path parameter
func AttemptID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "attemptId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid attempt ID!", nil)
		}
		c.Locals("attemptID", id)
		return c.Next()
	}
}
