package models

import "gorm.io/gorm"

// Video represents an explanation video attached to a unit
type Video struct {
	gorm.Model
	UnitID   uint   `json:"unit_id" gorm:"index;not null"`
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
}
