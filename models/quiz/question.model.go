package quiz

import "gorm.io/gorm"

const (
	QuestionTypeMCQ     = "mcq"
	QuestionTypeWritten = "written"
)

// Question belongs to exactly one quiz
type Question struct {
	gorm.Model
	QuizID       uint   `json:"quiz_id" gorm:"index;not null"`
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type" gorm:"default:'mcq'"`
	Points       int    `json:"points" gorm:"default:0"`
}

// QuestionOption is one choice for an MCQ question. Exactly one option per
// question is expected to carry IsCorrect; authoring is responsible for that,
// grading treats zero or multiple correct options as ungradable.
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}
