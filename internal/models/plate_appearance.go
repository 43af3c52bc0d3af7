package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// PlateAppearance 表示一名打者的一個打席
type PlateAppearance struct {
	gorm.Model
	GameID   uint            `gorm:"not null;index" json:"game_id"`
	TeamID   uint            `gorm:"not null" json:"team_id"`
	BatterID uint            `gorm:"not null;index" json:"batter_id"`
	Number   int             `gorm:"not null" json:"number"` // 該場比賽中的打席序號，從 1 開始連續編號
	Inning   int             `gorm:"not null" json:"inning"`
	Result   PAResultType    `gorm:"type:varchar(20);not null" json:"result"`
	Subtype  PAResultSubtype `gorm:"type:varchar(20);not null" json:"subtype"`
	RBI      int             `gorm:"not null;default:0" json:"rbi"`
}

// PAResultType 定義打席結果的大類
type PAResultType string

const (
	PAResultHit       PAResultType = "hit"
	PAResultWalk      PAResultType = "walk"
	PAResultOut       PAResultType = "out"
	PAResultSacrifice PAResultType = "sacrifice"
)

// PAResultSubtype 定義打席結果的細項
type PAResultSubtype string

const (
	PAHitSingle  PAResultSubtype = "single"
	PAHitDouble  PAResultSubtype = "double"
	PAHitTriple  PAResultSubtype = "triple"
	PAHitHomeRun PAResultSubtype = "home_run"

	PAWalkUnintentional PAResultSubtype = "walk"
	PAWalkIntentional   PAResultSubtype = "intentional_walk"
	PAWalkHitByPitch    PAResultSubtype = "hit_by_pitch"

	PAOutStrikeout      PAResultSubtype = "strikeout"
	PAOutGroundout      PAResultSubtype = "groundout"
	PAOutFlyout         PAResultSubtype = "flyout"
	PAOutLineout        PAResultSubtype = "lineout"
	PAOutPopout         PAResultSubtype = "popout"
	PAOutFieldersChoice PAResultSubtype = "fielders_choice"
	PAOutDoublePlay     PAResultSubtype = "double_play"

	PASacFly  PAResultSubtype = "sac_fly"
	PASacBunt PAResultSubtype = "sac_bunt"
)

// paSubtypes 列出每個大類允許的細項
var paSubtypes = map[PAResultType][]PAResultSubtype{
	PAResultHit:       {PAHitSingle, PAHitDouble, PAHitTriple, PAHitHomeRun},
	PAResultWalk:      {PAWalkUnintentional, PAWalkIntentional, PAWalkHitByPitch},
	PAResultOut:       {PAOutStrikeout, PAOutGroundout, PAOutFlyout, PAOutLineout, PAOutPopout, PAOutFieldersChoice, PAOutDoublePlay},
	PAResultSacrifice: {PASacFly, PASacBunt},
}

var (
	ErrPAUnknownResult      = errors.New("未知的打席結果類型")
	ErrPASubtypeMismatch    = errors.New("打席結果細項與大類不符")
	ErrPARBIOutOfRange      = errors.New("打點必須介於 0 到 4 之間")
	ErrPAHomeRunNeedsRBI    = errors.New("全壘打至少帶有 1 分打點")
	ErrPAStrikeoutHasRBI    = errors.New("三振不會產生打點")
	ErrPATooManyRBIForPlay  = errors.New("此打席結果最多帶有 1 分打點")
	ErrPAInningInvalid      = errors.New("局數必須大於等於 1")
)

// Validate 檢查單一打席紀錄本身的欄位一致性
// 與前一打席之間的連續性（序號、局數不回頭）由記錄簿服務檢查
func (pa *PlateAppearance) Validate() error {
	subtypes, ok := paSubtypes[pa.Result]
	if !ok {
		return ErrPAUnknownResult
	}

	valid := false
	for _, st := range subtypes {
		if st == pa.Subtype {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %s 不屬於 %s", ErrPASubtypeMismatch, pa.Subtype, pa.Result)
	}

	if pa.Inning < 1 {
		return ErrPAInningInvalid
	}

	if pa.RBI < 0 || pa.RBI > 4 {
		return ErrPARBIOutOfRange
	}

	// 各結果的打點上下限
	switch {
	case pa.Subtype == PAHitHomeRun && pa.RBI < 1:
		// 全壘打打者本人一定回壘得分
		return ErrPAHomeRunNeedsRBI
	case pa.Subtype == PAOutStrikeout && pa.RBI > 0:
		return ErrPAStrikeoutHasRBI
	case pa.Result == PAResultWalk && pa.RBI > 1:
		// 保送只有滿壘時擠回 1 分
		return ErrPATooManyRBIForPlay
	case pa.Result == PAResultOut && pa.RBI > 1 &&
		pa.Subtype != PAOutFieldersChoice && pa.Subtype != PAOutDoublePlay:
		return ErrPATooManyRBIForPlay
	}

	return nil
}

// IsHit 回報打席是否為安打
func (pa *PlateAppearance) IsHit() bool {
	return pa.Result == PAResultHit
}

// CountsAsAtBat 回報打席是否計入打數（保送與犧牲打不計）
func (pa *PlateAppearance) CountsAsAtBat() bool {
	return pa.Result == PAResultHit || pa.Result == PAResultOut
}
