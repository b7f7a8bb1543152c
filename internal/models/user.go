package models

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"userId"`
	Handle   string `gorm:"unique;not null" json:"userName"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Bio      string `json:"bio,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
	ImageURL string `json:"userImage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

type SignupRequest struct {
	Handle          string `json:"handle"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries the optional profile fields. Empty fields
// are ignored rather than cleared.
type UpdateProfileRequest struct {
	Bio      string `json:"bio"`
	Website  string `json:"website"`
	Location string `json:"location"`
}

// UserData is the owner view returned by GET /user: credentials plus the
// user's likes, latest notifications and posts.
type UserData struct {
	Credentials         User           `json:"credentials"`
	Likes               []Like         `json:"likes"`
	Notifications       []Notification `json:"notifications"`
	Posts               []Post         `json:"posts"`
	UnreadNotifications int64          `json:"unreadNotifications"`
}

// PublicUserData is the guest view returned by GET /user/:userId.
type PublicUserData struct {
	Credentials User   `json:"credentials"`
	Posts       []Post `json:"posts"`
}
