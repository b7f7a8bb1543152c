package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
	"github.com/socialape/backend/internal/service"
	"github.com/socialape/backend/internal/validation"
)

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Signup handles user registration
func (h *AuthHandler) Signup(c *gin.Context) {
	var input models.SignupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.Signup(input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	token, err := h.users.Signup(input)
	if err != nil {
		if apperr.IsCode(err, apperr.ErrDuplicate) {
			field := "handle"
			if err.Error() == messages.ErrEmailTaken {
				field = "email"
			}
			c.JSON(http.StatusBadRequest, gin.H{field: err.Error()})
			return
		}
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validation.Login(input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	token, err := h.users.Login(input)
	if err != nil {
		if apperr.IsCode(err, apperr.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"general": err.Error()})
			return
		}
		apperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
