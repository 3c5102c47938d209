package auth

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const contextKeyUser = "user"

// RequireAuth restores the principal from the session and aborts with 401 when
// there is none. Stale sessions pointing at deleted users are dropped.
func RequireAuth(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := SessionUserID(session)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			return
		}

		user, err := service.GetUser(userID)
		if err != nil {
			_ = ClearSession(session)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			return
		}

		c.Set(contextKeyUser, user)
		c.Set("username", user.Username)
		c.Next()
	}
}

// RequirePermission aborts with 403 unless the current user's permission set
// grants the required permission. Must run after RequireAuth.
func RequirePermission(required models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			return
		}
		if !models.HasPermission(user.Permissions, required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrPermissionDenied.Error()})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the principal set by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
