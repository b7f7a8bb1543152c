package postgres

import (
	"gorm.io/gorm"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

func (r *NotificationRepository) DeleteBySource(notificationType string, sourceID int) error {
	if err := r.db.Where("type = ? AND source_id = ?", notificationType, sourceID).
		Delete(&models.Notification{}).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

func (r *NotificationRepository) ListByRecipient(recipientID, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at desc").Limit(limit).Find(&notifications).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ids []int, recipientID int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.Model(&models.Notification{}).
		Where("id IN ? AND recipient_id = ?", ids, recipientID).
		Update("read", true).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return nil
}

func (r *NotificationRepository) CountUnread(recipientID int) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, apperr.Wrap(apperr.ErrDatabase, messages.ErrServer, err)
	}
	return count, nil
}
