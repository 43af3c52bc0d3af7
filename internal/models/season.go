package models

import (
	"time"

	"gorm.io/gorm"
)

// Season 表示一個賽季，比賽都隸屬於某個賽季
type Season struct {
	gorm.Model
	Name      string    `gorm:"size:100;not null" json:"name"`
	Year      int       `gorm:"not null" json:"year"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    bool      `gorm:"not null;default:false" json:"active"` // 同一時間只會有一個啟用中的賽季
}
