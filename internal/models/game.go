package models

import (
	"time"

	"gorm.io/gorm"
)

// Game 表示一場例行賽
type Game struct {
	gorm.Model
	SeasonID    uint       `gorm:"not null;index" json:"season_id"`
	HomeTeamID  uint       `gorm:"not null;index" json:"home_team_id"`
	AwayTeamID  uint       `gorm:"not null;index" json:"away_team_id"`
	ScheduledAt time.Time  `gorm:"not null" json:"scheduled_at"`
	Field       string     `gorm:"size:100" json:"field"`
	Status      GameStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	StatusNote  string     `gorm:"size:255" json:"status_note,omitempty"` // 延賽、取消等原因
	HomeScore   int        `gorm:"not null;default:0" json:"home_score"`
	AwayScore   int        `gorm:"not null;default:0" json:"away_score"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// GameStatus 定義比賽狀態的類型
type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusWarmup     GameStatus = "warmup"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusSuspended  GameStatus = "suspended"
	GameStatusPostponed  GameStatus = "postponed"
	GameStatusCancelled  GameStatus = "cancelled"
	GameStatusFinal      GameStatus = "final"
)

// gameTransitions 列出每個狀態允許的下一個狀態
var gameTransitions = map[GameStatus][]GameStatus{
	GameStatusScheduled:  {GameStatusWarmup, GameStatusInProgress, GameStatusPostponed, GameStatusCancelled},
	GameStatusWarmup:     {GameStatusInProgress, GameStatusPostponed, GameStatusCancelled},
	GameStatusInProgress: {GameStatusSuspended, GameStatusFinal},
	GameStatusSuspended:  {GameStatusInProgress, GameStatusPostponed, GameStatusCancelled, GameStatusFinal},
	GameStatusPostponed:  {GameStatusScheduled}, // 延賽後需重新排定日期
	// cancelled 和 final 為終止狀態
}

// CanTransitionTo 檢查比賽狀態是否允許轉換到 next
func (s GameStatus) CanTransitionTo(next GameStatus) bool {
	for _, allowed := range gameTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal 回報狀態是否為終止狀態
func (s GameStatus) Terminal() bool {
	return s == GameStatusCancelled || s == GameStatusFinal
}

// Live 回報比賽是否進行中（可記錄打席與更新比分）
func (s GameStatus) Live() bool {
	return s == GameStatusInProgress || s == GameStatusSuspended
}
