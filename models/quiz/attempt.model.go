package quiz

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is one completed submission of a quiz by a student. Created
// exactly once per submission, never mutated afterward.
type QuizAttempt struct {
	gorm.Model
	QuizID    uint      `json:"quiz_id" gorm:"index;not null"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	Score     int       `json:"score"`
	StartTime time.Time `json:"start_time"` // client-supplied
	EndTime   time.Time `json:"end_time"`   // server-assigned at commit
}

// StudentAnswer is one response to one question within an attempt
type StudentAnswer struct {
	gorm.Model
	AttemptID        uint    `json:"attempt_id" gorm:"index;not null"`
	QuestionID       uint    `json:"question_id" gorm:"index;not null"`
	AnswerText       *string `json:"answer_text"`
	SelectedOptionID *uint   `json:"selected_option_id"`
	FileURL          *string `json:"file_url"`
}
