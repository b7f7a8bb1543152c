package models

import "time"

const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
)

// Notification is created by the reaction engine when somebody likes or
// comments on another user's post. SourceID mirrors the ID of the triggering
// like or comment, which is how the like-deleted reaction finds the
// notification to remove.
type Notification struct {
	ID           int       `gorm:"primaryKey" json:"notificationId"`
	Type         string    `gorm:"not null" json:"type"`
	SourceID     int       `gorm:"index" json:"-"`
	RecipientID  int       `gorm:"index" json:"recipient"`
	SenderID     int       `json:"sender"`
	SenderHandle string    `json:"senderName"`
	PostID       int       `gorm:"index" json:"postId"`
	Read         bool      `gorm:"default:false" json:"read"`
	CreatedAt    time.Time `json:"createdAt"`
}
