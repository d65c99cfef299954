package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa/middleware"
	"madrasa/models"
)

// AuthController handles student identification. The platform trusts the
// submitted email; there are no passwords or sessions.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login resolves a registered email to the student profile and records a
// login activity
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	payload, ok := c.Locals("validatedLogin").(*struct {
		Email string `json:"email" validate:"required,email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	var student models.Student
	if err := ctl.DB.Where("email = ?", payload.Email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Email is not registered!", nil)
		}
		log.Printf("Login lookup failed for %s: %v", payload.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	activity := models.ActivityLog{
		StudentID:         student.ID,
		ActivityType:      models.ActivityTypeLogin,
		Details:           "قام بتسجيل الدخول",
		ActivityTimestamp: time.Now(),
	}
	if err := ctl.DB.Create(&activity).Error; err != nil {
		log.Printf("Failed to log login activity for student %d: %v", student.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"id":            student.ID,
		"name":          student.Name,
		"academicStage": student.AcademicStage,
		"isTeacher":     student.IsTeacher,
	})
}
