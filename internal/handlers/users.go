package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
	"github.com/socialape/backend/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UpdateProfile applies the optional bio/website/location fields (PROTECTED)
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.UpdateProfile(userID, input); err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messages.MsgProfileUpdated})
}

// UploadAvatar stores a new profile image (PROTECTED, multipart)
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get file"})
		return
	}

	if err := h.users.UploadAvatar(c.Request.Context(), userID, file); err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messages.MsgImageUploaded})
}

// GetOwnData returns credentials, likes, notifications and posts (PROTECTED)
func (h *UserHandler) GetOwnData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	data, err := h.users.OwnerData(c.Request.Context(), userID)
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetUserData returns the public view of any user's profile
func (h *UserHandler) GetUserData(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": messages.ErrUserNotFound})
		return
	}

	data, err := h.users.GuestData(userID)
	if err != nil {
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
