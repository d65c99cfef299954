package quiz

import "gorm.io/gorm"

const (
	QuizTypeFinal   = "final"
	QuizTypeMonthly = "monthly"
	QuizTypeQuick   = "quick"
)

// Quiz represents an assessment attached to a grade level. Quizzes are
// authored once and never mutated by the submission flow.
type Quiz struct {
	gorm.Model
	Title           string `json:"title" gorm:"not null"`
	GradeID         uint   `json:"grade_id" gorm:"index;not null"` // references GradeLevel
	QuizType        string `json:"quiz_type" gorm:"default:'quick'"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
}
