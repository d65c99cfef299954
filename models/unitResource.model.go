package models

import "gorm.io/gorm"

// UnitResource represents a downloadable learning resource attached to a unit
type UnitResource struct {
	gorm.Model
	UnitID   uint   `json:"unit_id" gorm:"index;not null"`
	Title    string `json:"title"`
	Category string `json:"category"` // summary, worksheet, exam ...
	FileURL  string `json:"file_url"`
}
