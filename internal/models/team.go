package models

import (
	"gorm.io/gorm"
)

// Team 表示聯盟中的一支球隊
type Team struct {
	gorm.Model
	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Abbreviation string `gorm:"size:10" json:"abbreviation"`
	ManagerID    uint   `json:"manager_id"`
	InviteCode   string `gorm:"size:20;uniqueIndex;not null" json:"-"` // 球員憑邀請碼加入，不對外序列化
	HomeField    string `gorm:"size:100" json:"home_field,omitempty"`
	Players      []User `gorm:"foreignKey:TeamID" json:"players,omitempty"`
}
