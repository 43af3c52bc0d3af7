package models

import (
	"gorm.io/gorm"
)

// User 表示聯盟中的使用者
type User struct {
	gorm.Model              // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"` // 使用者名稱，必須唯一
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"size:255;not null" json:"-"` // 密碼雜湊，json 序列化時會被忽略
	DisplayName  string     `gorm:"size:100" json:"display_name"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'player'" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	TeamID       *uint      `json:"team_id,omitempty"` // 所屬球隊，可為空
	JerseyNumber *int       `json:"jersey_number,omitempty"`
	Bats         string     `gorm:"size:1" json:"bats,omitempty"`   // L/R/S
	Throws       string     `gorm:"size:1" json:"throws,omitempty"` // L/R
}

// UserRole 定義使用者角色的類型
type UserRole string

const (
	RolePlayer       UserRole = "player"       // 一般球員
	RoleManager      UserRole = "manager"      // 球隊經理
	RoleAdmin        UserRole = "admin"        // 聯盟管理員
	RoleCommissioner UserRole = "commissioner" // 會長，擁有所有權限
)

// UserStatus 定義使用者帳號狀態
type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusBanned UserStatus = "banned"
)

// ValidRole 檢查角色字串是否合法
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RolePlayer, RoleManager, RoleAdmin, RoleCommissioner:
		return true
	}
	return false
}
