package models

import "gorm.io/gorm"

// GradeLevel represents a single school year within a grade
type GradeLevel struct {
	gorm.Model
	GradeID uint   `json:"grade_id" gorm:"index;not null"`
	Name    string `json:"name" gorm:"not null"`
}
