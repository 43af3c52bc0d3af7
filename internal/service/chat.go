package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/logger"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

const (
	editWindow     = 15 * time.Minute // 發言後可編輯的時限
	unreadCacheTTL = 60 * time.Second
	pageLimitMax   = 100
)

type ChatService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	teamRepo    repository.TeamRepository
	hub         *ChatHub
	rdb         *redis.Client
	clock       clockwork.Clock
	log         *logger.Logger
}

func NewChatService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	hub *ChatHub,
	rdb *redis.Client,
	clock clockwork.Clock,
	log *logger.Logger,
) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		teamRepo:    teamRepo,
		hub:         hub,
		rdb:         rdb,
		clock:       clock,
		log:         log,
	}
}

// memberOf 檢查使用者是否為球隊成員，管理員與會長視同成員
func memberOf(user *models.User, teamID uint) bool {
	if user.Role == models.RoleAdmin || user.Role == models.RoleCommissioner {
		return true
	}
	return user.TeamID != nil && *user.TeamID == teamID
}

// canModerate 檢查使用者是否可管理該球隊的頻道（置頂、刪他人訊息）
func (s *ChatService) canModerate(user *models.User, teamID uint) bool {
	if user.Role == models.RoleAdmin || user.Role == models.RoleCommissioner {
		return true
	}
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return false
	}
	return team.ManagerID == user.ID
}

func (s *ChatService) requireMember(userID, teamID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if !memberOf(user, teamID) {
		return nil, fmt.Errorf("%w: 僅限球隊成員", ErrForbidden)
	}
	return user, nil
}

// Post 在球隊頻道發言並廣播給在線成員
func (s *ChatService) Post(userID, teamID uint, channel models.Channel, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: 訊息內容不可為空", ErrValidation)
	}

	user, err := s.requireMember(userID, teamID)
	if err != nil {
		return nil, err
	}

	// important 頻道僅經理與管理員可發言
	if channel == models.ChannelImportant && !s.canModerate(user, teamID) {
		return nil, fmt.Errorf("%w: 此頻道僅限經理發言", ErrForbidden)
	}

	message := &models.Message{
		TeamID:  teamID,
		Channel: channel,
		UserID:  userID,
		Type:    models.MessageTypeText,
		Content: content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	s.invalidateUnread(teamID, channel)
	s.hub.Broadcast(teamID, channel, message)
	return message, nil
}

// Messages 以時間游標分頁查詢頻道訊息
func (s *ChatService) Messages(userID, teamID uint, channel models.Channel, before time.Time, limit int) ([]models.Message, error) {
	if _, err := s.requireMember(userID, teamID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > pageLimitMax {
		limit = 50
	}

	messages, err := s.messageRepo.FindChannelPage(teamID, channel, before, limit)
	if err != nil {
		return nil, err
	}

	// 已刪除的訊息以墓碑形式呈現，內容不外流
	for i := range messages {
		if messages[i].Deleted {
			messages[i].Content = ""
		}
	}
	return messages, nil
}

// Edit 作者在時限內編輯自己的訊息
func (s *ChatService) Edit(userID, messageID uint, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: 訊息內容不可為空", ErrValidation)
	}

	message, err := s.getMessage(messageID)
	if err != nil {
		return nil, err
	}

	if message.UserID != userID {
		return nil, fmt.Errorf("%w: 只能編輯自己的訊息", ErrForbidden)
	}
	if message.Deleted {
		return nil, fmt.Errorf("%w: 訊息已刪除", ErrConflict)
	}
	if s.clock.Now().Sub(message.CreatedAt) > editWindow {
		return nil, fmt.Errorf("%w: 已超過可編輯時限", ErrConflict)
	}

	now := s.clock.Now()
	message.Content = content
	message.EditedAt = &now
	if err := s.messageRepo.Update(message); err != nil {
		return nil, err
	}

	s.hub.Broadcast(message.TeamID, message.Channel, message)
	return message, nil
}

// Delete 軟刪除訊息：作者本人或可管理頻道者皆可執行
func (s *ChatService) Delete(userID, messageID uint) error {
	message, err := s.getMessage(messageID)
	if err != nil {
		return err
	}
	if message.Deleted {
		return fmt.Errorf("%w: 訊息已刪除", ErrConflict)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if message.UserID != userID && !s.canModerate(user, message.TeamID) {
		return fmt.Errorf("%w: 無權刪除此訊息", ErrForbidden)
	}

	// 保留資料列，清空內容並解除置頂
	message.Deleted = true
	message.Content = ""
	message.Pinned = false
	if err := s.messageRepo.Update(message); err != nil {
		return err
	}

	s.invalidateUnread(message.TeamID, message.Channel)
	s.hub.Broadcast(message.TeamID, message.Channel, message)
	return nil
}

// Pin 置頂訊息，僅經理與管理員可操作
func (s *ChatService) Pin(userID, messageID uint, pinned bool) (*models.Message, error) {
	message, err := s.getMessage(messageID)
	if err != nil {
		return nil, err
	}
	if message.Deleted {
		return nil, fmt.Errorf("%w: 已刪除的訊息不可置頂", ErrConflict)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: 使用者不存在", ErrNotFound)
	}
	if !s.canModerate(user, message.TeamID) {
		return nil, fmt.Errorf("%w: 僅限經理置頂訊息", ErrForbidden)
	}

	message.Pinned = pinned
	if err := s.messageRepo.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Pinned 查詢頻道的置頂訊息
func (s *ChatService) Pinned(userID, teamID uint, channel models.Channel) ([]models.Message, error) {
	if _, err := s.requireMember(userID, teamID); err != nil {
		return nil, err
	}
	return s.messageRepo.FindPinned(teamID, channel)
}

// UnreadCounts 回報使用者在各頻道的未讀數，結果以 Redis 快取
func (s *ChatService) UnreadCounts(userID, teamID uint) (map[models.Channel]int64, error) {
	if _, err := s.requireMember(userID, teamID); err != nil {
		return nil, err
	}

	counts := make(map[models.Channel]int64, 3)
	for _, channel := range models.Channels() {
		count, err := s.unreadCount(userID, teamID, channel)
		if err != nil {
			return nil, err
		}
		counts[channel] = count
	}
	return counts, nil
}

func (s *ChatService) unreadCount(userID, teamID uint, channel models.Channel) (int64, error) {
	ctx := context.Background()
	key := unreadKey(userID, teamID, channel)

	// 快取命中直接回傳
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	// 快取未命中，從已讀標記重新計算
	var after time.Time
	mark, err := s.messageRepo.GetReadMark(userID, teamID, channel)
	if err != nil {
		return 0, err
	}
	if mark != nil {
		after = mark.LastReadAt
	}

	count, err := s.messageRepo.CountUnread(teamID, channel, after, userID)
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, key, strconv.FormatInt(count, 10), unreadCacheTTL)
	}
	return count, nil
}

// MarkRead 更新已讀標記並清除快取
func (s *ChatService) MarkRead(userID, teamID uint, channel models.Channel) error {
	if _, err := s.requireMember(userID, teamID); err != nil {
		return err
	}

	mark := &models.ChannelReadMark{
		UserID:     userID,
		TeamID:     teamID,
		Channel:    channel,
		LastReadAt: s.clock.Now(),
	}
	if err := s.messageRepo.UpsertReadMark(mark); err != nil {
		return err
	}

	if s.rdb != nil {
		s.rdb.Del(context.Background(), unreadKey(userID, teamID, channel))
	}
	return nil
}

// invalidateUnread 清除某頻道所有使用者的未讀數快取
func (s *ChatService) invalidateUnread(teamID uint, channel models.Channel) {
	if s.rdb == nil {
		return
	}
	ctx := context.Background()
	pattern := fmt.Sprintf("unread:*:%d:%s", teamID, channel)
	keys, err := s.rdb.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		s.rdb.Del(ctx, keys...)
	}
}

func (s *ChatService) getMessage(id uint) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: 訊息不存在", ErrNotFound)
	}
	return message, err
}

func unreadKey(userID, teamID uint, channel models.Channel) string {
	return fmt.Sprintf("unread:%d:%d:%s", userID, teamID, channel)
}
