package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/storage"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	FindChannelPage(teamID uint, channel models.Channel, before time.Time, limit int) ([]models.Message, error)
	FindPinned(teamID uint, channel models.Channel) ([]models.Message, error)
	CountUnread(teamID uint, channel models.Channel, after time.Time, excludeUserID uint) (int64, error)
	Update(message *models.Message) error
	GetReadMark(userID, teamID uint, channel models.Channel) (*models.ChannelReadMark, error)
	UpsertReadMark(mark *models.ChannelReadMark) error
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindChannelPage 以時間游標分頁查詢頻道訊息，新的在前
func (r *messageRepository) FindChannelPage(teamID uint, channel models.Channel, before time.Time, limit int) ([]models.Message, error) {
	query := r.db.Where("team_id = ? AND channel = ?", teamID, channel)
	if !before.IsZero() {
		query = query.Where("created_at < ?", before)
	}

	var messages []models.Message
	err := query.Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindPinned(teamID uint, channel models.Channel) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("team_id = ? AND channel = ? AND pinned = ? AND deleted = ?",
		teamID, channel, true, false).
		Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// CountUnread 計算已讀時間之後的訊息數，不含自己發的與已刪除的
func (r *messageRepository) CountUnread(teamID uint, channel models.Channel, after time.Time, excludeUserID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("team_id = ? AND channel = ? AND deleted = ? AND user_id <> ?",
			teamID, channel, false, excludeUserID).
		Where("created_at > ?", after).
		Count(&count).Error
	return count, err
}

func (r *messageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// GetReadMark 查詢已讀標記，不存在時回傳 nil 而非錯誤
func (r *messageRepository) GetReadMark(userID, teamID uint, channel models.Channel) (*models.ChannelReadMark, error) {
	var mark models.ChannelReadMark
	err := r.db.Where("user_id = ? AND team_id = ? AND channel = ?", userID, teamID, channel).
		First(&mark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

func (r *messageRepository) UpsertReadMark(mark *models.ChannelReadMark) error {
	existing, err := r.GetReadMark(mark.UserID, mark.TeamID, mark.Channel)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(mark).Error
	}
	existing.LastReadAt = mark.LastReadAt
	return r.db.Save(existing).Error
}
