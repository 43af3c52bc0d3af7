package service

import (
	"fmt"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

// ScorebookService 負責記錄簿：打席的驗證、登錄與打擊統計
type ScorebookService struct {
	paRepo   repository.PlateAppearanceRepository
	gameRepo repository.GameRepository
	userRepo repository.UserRepository
}

func NewScorebookService(
	paRepo repository.PlateAppearanceRepository,
	gameRepo repository.GameRepository,
	userRepo repository.UserRepository,
) *ScorebookService {
	return &ScorebookService{
		paRepo:   paRepo,
		gameRepo: gameRepo,
		userRepo: userRepo,
	}
}

// canScore 檢查使用者是否可記錄該場比賽：管理員，或參賽隊伍之一的經理
func (s *ScorebookService) canScore(user *models.User, game *models.Game) bool {
	if user.Role == models.RoleAdmin || user.Role == models.RoleCommissioner {
		return true
	}
	if user.Role != models.RoleManager || user.TeamID == nil {
		return false
	}
	return *user.TeamID == game.HomeTeamID || *user.TeamID == game.AwayTeamID
}

// RecordInput 是登錄打席的輸入
type RecordInput struct {
	BatterID uint
	TeamID   uint
	Inning   int
	Result   models.PAResultType
	Subtype  models.PAResultSubtype
	RBI      int
}

// Record 登錄一個打席，序號由系統接續編排
func (s *ScorebookService) Record(recorderID, gameID uint, input RecordInput) (*models.PlateAppearance, error) {
	game, err := s.getGame(gameID)
	if err != nil {
		return nil, err
	}
	if !game.Status.Live() {
		return nil, fmt.Errorf("%w: 比賽不在進行中，不可記錄打席", ErrConflict)
	}

	recorder, err := s.userRepo.FindByID(recorderID)
	if err != nil {
		return nil, fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if !s.canScore(recorder, game) {
		return nil, fmt.Errorf("%w: 僅限參賽隊伍經理或管理員記錄", ErrForbidden)
	}

	if input.TeamID != game.HomeTeamID && input.TeamID != game.AwayTeamID {
		return nil, fmt.Errorf("%w: 打者所屬球隊未參與本場比賽", ErrValidation)
	}

	batter, err := s.userRepo.FindByID(input.BatterID)
	if err != nil {
		return nil, fmt.Errorf("%w: 打者不存在", ErrNotFound)
	}
	if batter.TeamID == nil || *batter.TeamID != input.TeamID {
		return nil, fmt.Errorf("%w: 打者不屬於指定球隊", ErrValidation)
	}

	last, err := s.paRepo.FindLastByGame(gameID)
	if err != nil {
		return nil, err
	}

	pa := &models.PlateAppearance{
		GameID:   gameID,
		TeamID:   input.TeamID,
		BatterID: input.BatterID,
		Inning:   input.Inning,
		Result:   input.Result,
		Subtype:  input.Subtype,
		RBI:      input.RBI,
	}

	// 序號連續編排，局數不可回頭
	if last == nil {
		pa.Number = 1
	} else {
		pa.Number = last.Number + 1
		if pa.Inning < last.Inning {
			return nil, fmt.Errorf("%w: 局數不可小於前一打席的 %d 局", ErrValidation, last.Inning)
		}
	}

	if err := pa.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.paRepo.Create(pa); err != nil {
		return nil, err
	}
	return pa, nil
}

// List 查詢某場比賽的全部打席，依序號排序
func (s *ScorebookService) List(gameID uint) ([]models.PlateAppearance, error) {
	if _, err := s.getGame(gameID); err != nil {
		return nil, err
	}
	return s.paRepo.FindByGame(gameID)
}

// DeleteLast 撤銷最後一個打席
// 序號必須連續，因此只開放撤銷最後一筆來修正誤登
func (s *ScorebookService) DeleteLast(recorderID, gameID uint) error {
	game, err := s.getGame(gameID)
	if err != nil {
		return err
	}
	if game.Status == models.GameStatusFinal || game.Status == models.GameStatusCancelled {
		return fmt.Errorf("%w: 比賽已結束，記錄簿不可修改", ErrConflict)
	}

	recorder, err := s.userRepo.FindByID(recorderID)
	if err != nil {
		return fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if !s.canScore(recorder, game) {
		return fmt.Errorf("%w: 僅限參賽隊伍經理或管理員操作", ErrForbidden)
	}

	last, err := s.paRepo.FindLastByGame(gameID)
	if err != nil {
		return err
	}
	if last == nil {
		return fmt.Errorf("%w: 本場比賽尚無打席紀錄", ErrNotFound)
	}

	return s.paRepo.Delete(last.ID)
}

// StatLine 是對外呈現的單一打者打擊成績
type StatLine struct {
	PlayerID   uint    `json:"player_id"`
	PlayerName string  `json:"player_name"`
	TeamName   string  `json:"team_name"`
	PA         int     `json:"pa"`
	AB         int     `json:"ab"`
	Hits       int     `json:"hits"`
	Walks      int     `json:"walks"`
	Sacrifices int     `json:"sacrifices"`
	RBI        int     `json:"rbi"`
	AVG        float64 `json:"avg"`
}

// BattingStats 計算整季打擊統計，minPA 過濾打席數不足的打者
func (s *ScorebookService) BattingStats(seasonID uint, minPA int) ([]StatLine, error) {
	totals, err := s.paRepo.BattingTotalsBySeason(seasonID)
	if err != nil {
		return nil, err
	}

	lines := make([]StatLine, 0, len(totals))
	for _, t := range totals {
		if t.PA < minPA {
			continue
		}
		lines = append(lines, buildStatLine(t))
	}
	return lines, nil
}

// buildStatLine 從聚合結果推導打數與打擊率
// 打數 = 打席 - 保送 - 犧牲打；打擊率 = 安打 / 打數（打數為 0 時記 0）
func buildStatLine(t repository.BattingTotals) StatLine {
	ab := t.PA - t.Walks - t.Sacrifices
	avg := 0.0
	if ab > 0 {
		avg = float64(t.Hits) / float64(ab)
	}
	return StatLine{
		PlayerID:   t.BatterID,
		PlayerName: t.PlayerName,
		TeamName:   t.TeamName,
		PA:         t.PA,
		AB:         ab,
		Hits:       t.Hits,
		Walks:      t.Walks,
		Sacrifices: t.Sacrifices,
		RBI:        t.RBI,
		AVG:        avg,
	}
}

func (s *ScorebookService) getGame(id uint) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: 比賽不存在", ErrNotFound)
	}
	return game, nil
}
