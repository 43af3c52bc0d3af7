package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

const inviteCodeLength = 8

type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo, userRepo: userRepo}
}

// Create 建立球隊並指派經理，經理同時加入該隊
func (s *TeamService) Create(name, abbreviation, homeField string, managerID uint) (*models.Team, error) {
	manager, err := s.userRepo.FindByID(managerID)
	if err != nil {
		return nil, fmt.Errorf("%w: 指定的經理不存在", ErrNotFound)
	}

	team := &models.Team{
		Name:         name,
		Abbreviation: abbreviation,
		HomeField:    homeField,
		ManagerID:    managerID,
		InviteCode:   utils.GenerateInviteCode(inviteCodeLength),
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("%w: 球隊名稱已存在", ErrConflict)
	}

	// 經理加入球隊；一般球員被指派為經理時升級角色
	manager.TeamID = &team.ID
	if manager.Role == models.RolePlayer {
		manager.Role = models.RoleManager
	}
	if err := s.userRepo.Update(manager); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *TeamService) Get(id uint) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: 球隊不存在", ErrNotFound)
	}
	return team, err
}

func (s *TeamService) List() ([]models.Team, error) {
	return s.teamRepo.FindAll()
}

// Roster 查詢球隊名單
func (s *TeamService) Roster(teamID uint) ([]models.User, error) {
	if _, err := s.Get(teamID); err != nil {
		return nil, err
	}
	return s.userRepo.FindByTeamID(teamID)
}

// Join 使用者憑邀請碼加入球隊
func (s *TeamService) Join(userID uint, inviteCode string) (*models.Team, error) {
	team, err := s.teamRepo.FindByInviteCode(inviteCode)
	if err != nil {
		return nil, fmt.Errorf("%w: 無效的邀請碼", ErrValidation)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if user.TeamID != nil {
		return nil, fmt.Errorf("%w: 已加入其他球隊", ErrConflict)
	}

	user.TeamID = &team.ID
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return team, nil
}

// Leave 離開球隊，經理須先由管理員轉移職務
func (s *TeamService) Leave(userID uint) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if user.TeamID == nil {
		return fmt.Errorf("%w: 尚未加入任何球隊", ErrValidation)
	}

	team, err := s.teamRepo.FindByID(*user.TeamID)
	if err == nil && team.ManagerID == user.ID {
		return fmt.Errorf("%w: 經理須先轉移職務才能離隊", ErrConflict)
	}

	user.TeamID = nil
	return s.userRepo.Update(user)
}

// Update 由管理員修改球隊資料
func (s *TeamService) Update(teamID uint, name, abbreviation, homeField string) (*models.Team, error) {
	team, err := s.Get(teamID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		team.Name = name
	}
	if abbreviation != "" {
		team.Abbreviation = abbreviation
	}
	if homeField != "" {
		team.HomeField = homeField
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, err
	}
	return team, nil
}

// Delete 解散球隊，成員的隊伍歸屬一併清除
func (s *TeamService) Delete(teamID uint) error {
	if _, err := s.Get(teamID); err != nil {
		return err
	}

	members, err := s.userRepo.FindByTeamID(teamID)
	if err != nil {
		return err
	}
	for i := range members {
		members[i].TeamID = nil
		if err := s.userRepo.Update(&members[i]); err != nil {
			return err
		}
	}

	return s.teamRepo.Delete(teamID)
}

// ResetInviteCode 重設球隊邀請碼，舊碼立即失效
func (s *TeamService) ResetInviteCode(teamID uint) (string, error) {
	team, err := s.Get(teamID)
	if err != nil {
		return "", err
	}

	team.InviteCode = utils.GenerateInviteCode(inviteCodeLength)
	if err := s.teamRepo.Update(team); err != nil {
		return "", err
	}
	return team.InviteCode, nil
}

// SetManager 轉移球隊經理職務，新經理必須已是該隊成員
func (s *TeamService) SetManager(teamID, userID uint) (*models.Team, error) {
	team, err := s.Get(teamID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if user.TeamID == nil || *user.TeamID != teamID {
		return nil, fmt.Errorf("%w: 新經理必須是該隊成員", ErrValidation)
	}

	team.ManagerID = userID
	if err := s.teamRepo.Update(team); err != nil {
		return nil, err
	}

	if user.Role == models.RolePlayer {
		user.Role = models.RoleManager
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return team, nil
}
