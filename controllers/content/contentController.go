package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa/middleware"
	"madrasa/models"
)

// ContentController serves the read-only curriculum hierarchy:
// grades → levels → units → resources/videos.
type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

// GetGrades lists all school stages
func (ctl *ContentController) GetGrades(c *fiber.Ctx) error {
	var grades []models.Grade
	if err := ctl.DB.Order("id asc").Find(&grades).Error; err != nil {
		log.Printf("Error fetching grades: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch grades!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Grades fetched successfully!", grades)
}

// GetAllLevels lists every grade level across all stages
func (ctl *ContentController) GetAllLevels(c *fiber.Ctx) error {
	var levels []models.GradeLevel
	if err := ctl.DB.Order("id asc").Find(&levels).Error; err != nil {
		log.Printf("Error fetching levels: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch levels!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Levels fetched successfully!", levels)
}

// GetLevelsByGrade lists the grade levels of one stage
func (ctl *ContentController) GetLevelsByGrade(c *fiber.Ctx) error {
	gradeID := c.Locals("gradeID").(int)

	var levels []models.GradeLevel
	if err := ctl.DB.Where("grade_id = ?", gradeID).Order("id asc").Find(&levels).Error; err != nil {
		log.Printf("Error fetching levels for grade %d: %v", gradeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch levels!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Levels fetched successfully!", levels)
}

// GetUnitsByLevel lists the curriculum units of one grade level
func (ctl *ContentController) GetUnitsByLevel(c *fiber.Ctx) error {
	levelID := c.Locals("levelID").(int)

	var units []models.Unit
	if err := ctl.DB.Where("grade_id = ?", levelID).Order("id asc").Find(&units).Error; err != nil {
		log.Printf("Error fetching units for level %d: %v", levelID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch units!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Units fetched successfully!", units)
}

// GetUnitResources lists a unit's learning resources grouped by category
func (ctl *ContentController) GetUnitResources(c *fiber.Ctx) error {
	unitID := c.Locals("unitID").(int)

	var resources []models.UnitResource
	if err := ctl.DB.Where("unit_id = ?", unitID).Order("category asc, id asc").Find(&resources).Error; err != nil {
		log.Printf("Error fetching resources for unit %d: %v", unitID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", resources)
}

// GetUnitVideos lists a unit's explanation videos
func (ctl *ContentController) GetUnitVideos(c *fiber.Ctx) error {
	unitID := c.Locals("unitID").(int)

	var videos []models.Video
	if err := ctl.DB.Where("unit_id = ?", unitID).Order("id asc").Find(&videos).Error; err != nil {
		log.Printf("Error fetching videos for unit %d: %v", unitID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", videos)
}
