// Package messages holds the user-facing error and success texts returned by
// the API.
package messages

const (
	// General
	ErrServer          = "Something went wrong"
	ErrInvalidFileType = "Wrong file type submitted"

	// Authentication
	ErrEmpty            = "must not be empty !"
	ErrInvalidEmail     = "email must be a valid email address !"
	ErrInvalidPassword  = "password must be at least 6 characters !"
	ErrPasswordMismatch = "password confirm must match"
	ErrHandleTaken      = "this handle is already taken"
	ErrEmailTaken       = "email is already in use"
	ErrUnauthorized     = "Unauthorized"
	ErrWrongCredentials = "Wrong credentials, please try again"

	// Users
	ErrUserNotFound = "User not found"

	// Posts
	ErrPostNotFound = "Post not found"
	ErrAlreadyLiked = "Post already liked"
	ErrNotLikedYet  = "Post has not been liked yet"
)

const (
	MsgPostDeleted       = "Post deleted successfully"
	MsgProfileUpdated    = "Details updated successfully"
	MsgImageUploaded     = "Image uploaded successfully"
	MsgNotificationsRead = "Notifications marked read"
)
