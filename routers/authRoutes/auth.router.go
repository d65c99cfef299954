package authRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "madrasa/controllers/auth"
	authValidator "madrasa/validators/auth"
)

// SetupAuthRoutes sets up the login route
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewAuthController(db)

	api := app.Group("/api")
	api.Post("/login", authValidator.Login(), ctl.Login)
}
