package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"franguinho-pos/internal/domain/user"
	"franguinho-pos/internal/pkg/cookie"
	"franguinho-pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	authUseCase usecase.AuthUseCase
}

const (
	ctxUserIDKey  = "user_id"
	ctxStoreIDKey = "store_id"
	ctxRoleKey    = "user_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleCashier: 1,
	user.RoleManager: 2,
	user.RoleAdmin:   3,
}

func NewAuthMiddleware(authUseCase usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		auth, err := m.authUseCase.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, auth.UserID)
		c.Set(ctxStoreIDKey, auth.StoreID)
		c.Set(ctxRoleKey, auth.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id":  auth.UserID.String(),
			"store_id": auth.StoreID.String(),
			"role":     string(auth.Role),
		})
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetStoreID returns the store the authenticated staff member belongs to.
// Every tenant-scoped handler resolves its store through this, never from
// request input.
func GetStoreID(c *gin.Context) (uuid.UUID, bool) {
	storeID, exists := c.Get(ctxStoreIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := storeID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
