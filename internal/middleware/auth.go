package middleware

import (
	"net/http"
	"strings"

	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT. Токен берётся из заголовка
// Authorization, а для websocket-рукопожатия из ?access_token=.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware пропускает анонимов. Невалидный токен тоже
// считается анонимом: страница баунти видна всем.
func OptionalAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := extractToken(c); ok {
			if claims, err := tokens.ParseToken(tokenStr); err == nil {
				setClaims(c, claims)
			} else {
				logger.CtxDebug(c.Request.Context(), "Ignoring invalid token on public route", "error", err)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		return token, token != ""
	}
	if token := c.Query("access_token"); token != "" {
		return token, true
	}
	return "", false
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	// Сохраняем claims в контекст
	c.Set(string(contextkeys.UserIDKey), claims.UserID)
	c.Set(string(contextkeys.AddressKey), claims.Address)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
}

// GetUserID извлекает ID пользователя из контекста ("" для анонима)
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(string(contextkeys.UserIDKey))
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
