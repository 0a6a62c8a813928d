package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/jwt"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// SessionCookie 会话令牌 Cookie 名
const SessionCookie = "session-token"

// Authenticator 会话令牌校验
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

// SessionToken 从 Cookie 或 Authorization: Bearer 中提取令牌，Cookie 优先
func SessionToken(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionAuth 会话认证中间件
// 校验通过后把 user_id、username、role 注入上下文
func SessionAuth(auth Authenticator, failer *response.Failer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			failer.Abort(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			failer.Abort(c, err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("session_id", claims.ID)

		c.Next()
	}
}

// RequirePermission 权限中间件，需具备全部指定权限
func RequirePermission(failer *response.Failer, perms ...model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			failer.Abort(c, apperrors.ErrUnauthorized)
			return
		}

		for _, p := range perms {
			if !model.HasPermission(role, p) {
				failer.Abort(c, apperrors.ErrForbidden)
				return
			}
		}

		c.Next()
	}
}
