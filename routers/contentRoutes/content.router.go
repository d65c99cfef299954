package contentRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "madrasa/controllers/content"
	contentValidator "madrasa/validators/content"
)

// SetupContentRoutes sets up the curriculum hierarchy routes
func SetupContentRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewContentController(db)

	api := app.Group("/api")
	api.Get("/grades", ctl.GetGrades)
	api.Get("/levels", ctl.GetAllLevels)
	api.Get("/grades/:gradeId/levels", contentValidator.GradeID(), ctl.GetLevelsByGrade)
	api.Get("/levels/:levelId/units", contentValidator.LevelID(), ctl.GetUnitsByLevel)
	api.Get("/units/:unitId/resources", contentValidator.UnitID(), ctl.GetUnitResources)
	api.Get("/units/:unitId/videos", contentValidator.UnitID(), ctl.GetUnitVideos)
}
