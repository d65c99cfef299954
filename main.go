package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"madrasa/config"
	"madrasa/database"
	authRoutes "madrasa/routers/authRoutes"
	contentRoutes "madrasa/routers/contentRoutes"
	quizRoutes "madrasa/routers/quizRoutes"
	teacherRoutes "madrasa/routers/teacherRoutes"
)

func main() {
	config.LoadConfig()

	db, err := database.ConnectDb()
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}
	defer database.Close(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the client and the uploaded answer files
	app.Static("/", "./public")
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app, db)
	contentRoutes.SetupContentRoutes(app, db)
	quizRoutes.SetupQuizRoutes(app, db)
	teacherRoutes.SetupTeacherRoutes(app, db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
