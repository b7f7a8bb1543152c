package models

import "time"

// Like records that a user liked a post. At most one like may exist per
// (user, post) pair; the service layer rejects duplicates before the row is
// written, there is no database constraint backing it.
type Like struct {
	ID        int       `gorm:"primaryKey" json:"likeId"`
	PostID    int       `gorm:"index" json:"postId"`
	UserID    int       `gorm:"index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
