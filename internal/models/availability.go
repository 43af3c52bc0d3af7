package models

import (
	"gorm.io/gorm"
)

// AvailabilityStatus 定義出席回覆的類型
type AvailabilityStatus string

const (
	AvailabilityYes   AvailabilityStatus = "yes"
	AvailabilityNo    AvailabilityStatus = "no"
	AvailabilityMaybe AvailabilityStatus = "maybe"
)

// ValidAvailability 檢查出席回覆字串是否合法
func ValidAvailability(status string) bool {
	switch AvailabilityStatus(status) {
	case AvailabilityYes, AvailabilityNo, AvailabilityMaybe:
		return true
	}
	return false
}

// Availability 記錄球員對某場比賽的出席回覆
type Availability struct {
	gorm.Model
	UserID uint               `gorm:"not null;uniqueIndex:idx_availability" json:"user_id"`
	GameID uint               `gorm:"not null;uniqueIndex:idx_availability" json:"game_id"`
	Status AvailabilityStatus `gorm:"type:varchar(10);not null" json:"status"`
	Note   string             `gorm:"size:255" json:"note,omitempty"`
}
