package interfaces

import "github.com/socialape/backend/internal/models"

type NotificationRepository interface {
	Create(notification *models.Notification) error
	// DeleteBySource removes the notification mirroring the given like or
	// comment. Absence is not an error.
	DeleteBySource(notificationType string, sourceID int) error
	ListByRecipient(recipientID, limit int) ([]models.Notification, error)
	// MarkRead flags the given notifications as read, scoped to recipientID.
	MarkRead(ids []int, recipientID int) error
	CountUnread(recipientID int) (int64, error)
}
