package service

import (
	"context"

	"github.com/socialape/backend/internal/cache"
	"github.com/socialape/backend/internal/repository/interfaces"
)

type NotificationService struct {
	notifications interfaces.NotificationRepository
	unread        *cache.UnreadCounter
}

func NewNotificationService(notifications interfaces.NotificationRepository, unread *cache.UnreadCounter) *NotificationService {
	return &NotificationService{notifications: notifications, unread: unread}
}

// MarkRead flags the given notifications as read for recipientID and
// refreshes the cached unread counter from the store.
func (s *NotificationService) MarkRead(ctx context.Context, ids []int, recipientID int) error {
	if err := s.notifications.MarkRead(ids, recipientID); err != nil {
		return err
	}

	count, err := s.notifications.CountUnread(recipientID)
	if err != nil {
		return err
	}
	return s.unread.Set(ctx, recipientID, count)
}
