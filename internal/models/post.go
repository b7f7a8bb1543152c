package models

import "time"

// Post is a user-authored scream. Author name and image are copied from the
// user at creation time; an avatar change is propagated to existing posts by
// the reaction engine, so both fields are eventually consistent caches.
type Post struct {
	ID          int    `gorm:"primaryKey" json:"postId"`
	Category    string `gorm:"not null" json:"category"`
	Title       string `gorm:"not null" json:"title"`
	Body        string `gorm:"not null" json:"body"`
	AuthorID    int    `gorm:"index" json:"authorId"`
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage"`

	// Denormalized counters, adjusted in the same transaction as the
	// like/comment row they mirror.
	LikeCount    int `gorm:"default:0" json:"likeCount"`
	CommentCount int `gorm:"default:0" json:"commentCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

type CreatePostRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// PostDetail is a post with its comments, newest first.
type PostDetail struct {
	Post
	Comments []Comment `json:"comments"`
}
