package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"madrasa/middleware"
	"madrasa/models"
)

// GetStudentActivity returns one student's activity grouped into calendar
// weeks, newest week first
func (ctl *TeacherController) GetStudentActivity(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	var events []models.ActivityLog
	if err := ctl.DB.Where("student_id = ?", studentID).
		Order("activity_timestamp desc").
		Find(&events).Error; err != nil {
		log.Printf("Error fetching activity for student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student activity fetched successfully!", AggregateWeekly(events))
}
