package middleware

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/service/auth"
	"EasyToLearn/pkg/logger"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthMiddlewareProvider struct {
	log logger.Log
	jwt *auth.JWTManager
}

func NewAuthMiddlewareProvider(log logger.Log, jwt *auth.JWTManager) *AuthMiddlewareProvider {
	return &AuthMiddlewareProvider{
		log: log,
		jwt: jwt,
	}
}

// AuthMiddleware requires a valid bearer token and stashes the caller's
// identity in the context.
func (h *AuthMiddlewareProvider) AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	var token string
	if parts := strings.Split(authHeader, "Bearer "); len(parts) == 2 {
		token = parts[1]
	}
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := h.jwt.Parse(token)
	if err != nil {
		h.log.Info("failed to parse token", "error", err.Error())
		if errors.Is(err, app_errors.ErrTokenExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrTokenExpired.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "cant parse token"})
		return
	}

	c.Set(ClientIDCtx, claims.UserID)
	c.Set(ClientRoleCtx, claims.Role)
	c.Next()
}
