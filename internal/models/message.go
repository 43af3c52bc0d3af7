package models

import (
	"time"

	"gorm.io/gorm"
)

// Channel 表示球隊內的聊天頻道
type Channel string

const (
	ChannelGeneral     Channel = "general"
	ChannelImportant   Channel = "important"   // 僅經理與管理員可發言
	ChannelSubstitutes Channel = "substitutes" // 找代打、代跑
)

// ValidChannel 檢查頻道名稱是否合法
func ValidChannel(name string) bool {
	switch Channel(name) {
	case ChannelGeneral, ChannelImportant, ChannelSubstitutes:
		return true
	}
	return false
}

// Channels 列出所有頻道
func Channels() []Channel {
	return []Channel{ChannelGeneral, ChannelImportant, ChannelSubstitutes}
}

// MessageType 定義訊息的類型
type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeSystem MessageType = "system"
)

// Message 表示球隊頻道中的一則訊息
// 刪除採軟刪除：保留資料列，清空內容並標記 Deleted，前端顯示為墓碑
type Message struct {
	gorm.Model
	TeamID   uint        `gorm:"not null;index:idx_msg_team_channel" json:"team_id"`
	Channel  Channel     `gorm:"type:varchar(20);not null;index:idx_msg_team_channel" json:"channel"`
	UserID   uint        `json:"user_id"`
	Type     MessageType `gorm:"type:varchar(10);not null;default:'text'" json:"type"`
	Content  string      `gorm:"type:text" json:"content"`
	Pinned   bool        `gorm:"not null;default:false" json:"pinned"`
	EditedAt *time.Time  `json:"edited_at,omitempty"`
	Deleted  bool        `gorm:"not null;default:false" json:"deleted"`
}

// ChannelReadMark 記錄使用者在某頻道的已讀時間，用於計算未讀數
type ChannelReadMark struct {
	gorm.Model
	UserID     uint      `gorm:"not null;uniqueIndex:idx_read_mark" json:"user_id"`
	TeamID     uint      `gorm:"not null;uniqueIndex:idx_read_mark" json:"team_id"`
	Channel    Channel   `gorm:"type:varchar(20);not null;uniqueIndex:idx_read_mark" json:"channel"`
	LastReadAt time.Time `gorm:"not null" json:"last_read_at"`
}
