package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"madrasa/config"
	"madrasa/models"
	quizModels "madrasa/models/quiz"
)

// ConnectDb establishes a connection to PostgreSQL and returns the handle.
// The handle is passed to controllers explicitly rather than kept as
// package state, so lifecycle stays with main.
func ConnectDb() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.AppConfig.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.AppConfig.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance on close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Student{},
		&models.Grade{},
		&models.GradeLevel{},
		&models.Unit{},
		&models.UnitResource{},
		&models.Video{},
		&models.ActivityLog{},
		&quizModels.Quiz{},
		&quizModels.Question{},
		&quizModels.QuestionOption{},
		&quizModels.QuizAttempt{},
		&quizModels.StudentAnswer{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}
