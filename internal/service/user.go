package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 建立新使用者，密碼以 bcrypt 雜湊後儲存
func (s *UserService) Register(username, email, password, displayName string) (*models.User, error) {
	if existing, _ := s.userRepo.FindByUsername(username); existing != nil {
		return nil, fmt.Errorf("%w: 使用者名稱已被使用", ErrConflict)
	}
	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, fmt.Errorf("%w: 電子郵件已被使用", ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if displayName == "" {
		displayName = username
	}

	user := &models.User{
		Username:    username,
		Email:       email,
		Password:    string(hashedPassword),
		DisplayName: displayName,
		Role:        models.RolePlayer,
		Status:      models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate 驗證帳號密碼，停權帳號不可登入
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("%w: 帳號或密碼錯誤", ErrValidation)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: 帳號或密碼錯誤", ErrValidation)
	}

	if user.Status == models.UserStatusBanned {
		return nil, fmt.Errorf("%w: 帳號已被停權", ErrForbidden)
	}

	return user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	return user, err
}

// ProfileUpdate 描述使用者可自行修改的欄位，nil 欄位不變更
type ProfileUpdate struct {
	DisplayName  *string
	JerseyNumber *int
	Bats         *string
	Throws       *string
}

// UpdateProfile 更新使用者個人資料
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		user.DisplayName = *update.DisplayName
	}
	if update.JerseyNumber != nil {
		user.JerseyNumber = update.JerseyNumber
	}
	if update.Bats != nil {
		user.Bats = *update.Bats
	}
	if update.Throws != nil {
		user.Throws = *update.Throws
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword 驗證舊密碼後更換新密碼
func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return fmt.Errorf("%w: 舊密碼錯誤", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	return s.userRepo.Update(user)
}

// List 為管理後台列出使用者，可依角色與狀態過濾
func (s *UserService) List(role, status string) ([]models.User, error) {
	return s.userRepo.FindAll(role, status)
}

// SetRole 變更使用者角色，僅會長可操作（由路由層把關）
func (s *UserService) SetRole(userID uint, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: 無效的角色", ErrValidation)
	}

	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Role = models.UserRole(role)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetStatus 啟用或停權使用者帳號
func (s *UserService) SetStatus(userID uint, status string) (*models.User, error) {
	if status != string(models.UserStatusActive) && status != string(models.UserStatusBanned) {
		return nil, fmt.Errorf("%w: 無效的帳號狀態", ErrValidation)
	}

	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleCommissioner {
		return nil, fmt.Errorf("%w: 不可停權會長", ErrForbidden)
	}

	user.Status = models.UserStatus(status)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 刪除使用者帳號
func (s *UserService) Delete(userID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if user.Role == models.RoleCommissioner {
		return fmt.Errorf("%w: 不可刪除會長帳號", ErrForbidden)
	}
	return s.userRepo.Delete(userID)
}
