package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/socialape/backend/internal/apperr"
	"github.com/socialape/backend/internal/auth"
	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/service"
)

// AuthMiddleware validates the bearer token, resolves it to the user row and
// attaches the identity fields downstream handlers rely on. A missing or
// malformed header is rejected before any lookup happens.
func AuthMiddleware(users *service.UserService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			apperr.Handle(c, apperr.New(apperr.ErrUnauthorized, messages.ErrUnauthorized))
			c.Abort()
			return
		}

		userID, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), jwtSecret)
		if err != nil {
			apperr.Handle(c, apperr.Wrap(apperr.ErrUnauthorized, messages.ErrUnauthorized, err))
			c.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			apperr.Handle(c, apperr.Wrap(apperr.ErrUnauthorized, messages.ErrUnauthorized, err))
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_handle", user.Handle)
		c.Set("user_image", user.ImageURL)
		c.Next()
	}
}
