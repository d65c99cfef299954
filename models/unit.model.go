package models

import "gorm.io/gorm"

// Unit represents a curriculum unit within a grade level
type Unit struct {
	gorm.Model
	GradeID uint   `json:"grade_id" gorm:"index;not null"` // references GradeLevel
	Title   string `json:"title"`
}
