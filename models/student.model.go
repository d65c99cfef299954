package models

import "gorm.io/gorm"

type Student struct {
	gorm.Model
	Name          string `json:"name"`
	Email         string `json:"email" gorm:"unique;not null"`
	AcademicStage string `json:"academic_stage"` // matches GradeLevel.Name
	IsTeacher     bool   `json:"is_teacher" gorm:"default:false"`
}
