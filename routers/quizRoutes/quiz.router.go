package quizRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "madrasa/controllers/quiz"
	quizValidator "madrasa/validators/quiz"
)

// SetupQuizRoutes sets up quiz reads and submission
func SetupQuizRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controllers.NewQuizController(db)

	api := app.Group("/api")
	api.Get("/levels/:levelId/quizzes", quizValidator.LevelID(), ctl.GetQuizzesByLevel)
	api.Get("/quizzes/:quizId", quizValidator.QuizID(), ctl.GetQuizDetails)
	api.Post("/quizzes/:quizId/submit", quizValidator.SubmitQuiz(), ctl.SubmitQuiz)
}
