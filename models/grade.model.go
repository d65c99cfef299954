package models

import "gorm.io/gorm"

// Grade represents a school stage (primary, preparatory, secondary)
type Grade struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`
}
