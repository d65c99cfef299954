package contentValidator

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

// LevelID validates the :levelId path parameter
func LevelID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "levelId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid level ID!", nil)
		}
		c.Locals("levelID", id)
		return c.Next()
	}
}

// UnitID validates the :unitId path parameter
func UnitID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "unitId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid unit ID!", nil)
		}
		c.Locals("unitID", id)
		return c.Next()
	}
}
