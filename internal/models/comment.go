package models

import "time"

type Comment struct {
	ID          int       `gorm:"primaryKey" json:"commentId"`
	PostID      int       `gorm:"index" json:"postId"`
	AuthorID    int       `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	AuthorImage string    `json:"authorImage"`
	Body        string    `gorm:"not null" json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateCommentRequest struct {
	Body string `json:"body"`
}
