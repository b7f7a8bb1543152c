package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/service"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// MarkRead flags the posted notification IDs as read (PROTECTED). The body
// is a bare JSON array of IDs.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var ids []int
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), ids, userID); err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messages.MsgNotificationsRead})
}
