package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fleet_incident_reporting/internal/models"
	"github.com/shenikar/fleet_incident_reporting/internal/service"
	"github.com/sirupsen/logrus"
)

// Ключи контекста запроса, заполняются middleware сессии
const (
	ctxUserID    = "userID"
	ctxUserRole  = "userRole"
	ctxUserName  = "userName"
	ctxSessionID = "sessionToken"
)

// SessionAuthMiddleware - middleware для аутентификации по токену сессии.
// Токен берётся из заголовка X-Session-Token или Authorization: Bearer.
func SessionAuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if token == "" {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Warn("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(ctxUserID, user.ID)
		c.Set(ctxUserRole, user.Role)
		c.Set(ctxUserName, user.Name)
		c.Set(ctxSessionID, token)
		c.Next()
	}
}

// RequireRole пропускает только пользователей с указанной ролью
func RequireRole(role string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxUserRole) != role {
			log.WithFields(logrus.Fields{
				"required": role,
				"actual":   c.GetString(ctxUserRole),
			}).Warn("Insufficient role for request")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// currentUserID возвращает id пользователя из контекста запроса
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

// isAdmin сообщает, админ ли текущий пользователь
func isAdmin(c *gin.Context) bool {
	return c.GetString(ctxUserRole) == models.RoleAdmin
}
