package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ActivityTypeLogin      = "login"
	ActivityTypeQuizSubmit = "quiz_submit"
)

// ActivityLog is an append-only record of a student action. Rows are never
// updated or deleted.
type ActivityLog struct {
	gorm.Model
	StudentID         uint      `json:"student_id" gorm:"index;not null"`
	ActivityType      string    `json:"activity_type" gorm:"not null"`
	Details           string    `json:"details"`
	ActivityTimestamp time.Time `json:"activity_timestamp" gorm:"index"`
}
