package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/service"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Post         *PostHandler
	Notification *NotificationHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(users *service.UserService, posts *service.PostService, notifications *service.NotificationService) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(users),
		User:         NewUserHandler(users),
		Post:         NewPostHandler(posts),
		Notification: NewNotificationHandler(notifications),
	}
}

// currentUserID reads the identity the auth middleware attached. When it is
// missing the request never passed the auth gate, so a 403 is written here.
func currentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": messages.ErrUnauthorized})
		return 0, false
	}
	id, ok := v.(int)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": messages.ErrUnauthorized})
		return 0, false
	}
	return id, true
}
