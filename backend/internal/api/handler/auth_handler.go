package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/internal/api/middleware"
	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// userIDCookie 前端脚本可读的用户 ID Cookie
const userIDCookie = "user-id"

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	base
	authSvc service.AuthService
	userSvc service.UserService
	cookie  config.CookieConfig
	ttl     time.Duration
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, userSvc service.UserService, auth config.AuthConfig, failer *response.Failer) *AuthHandler {
	return &AuthHandler{
		base:    base{failer: failer},
		authSvc: authSvc,
		userSvc: userSvc,
		cookie:  auth.Cookie,
		ttl:     auth.SessionTTL,
	}
}

// Login 用户登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindOr(c, &req, service.ErrMissingCredentials) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req, dto.SessionMeta{
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	maxAge := result.ExpiresIn
	if maxAge <= 0 {
		maxAge = int(h.ttl.Seconds())
	}
	h.setCookie(c, middleware.SessionCookie, result.Token, maxAge, true)
	h.setCookie(c, userIDCookie, result.User.ID, maxAge, false)

	response.OK(c, result)
}

// Signup 用户注册
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.bindOr(c, &req, service.ErrMissingCredentials) {
		return
	}

	user, err := h.authSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Created(c, gin.H{"user": user})
}

// Logout 用户登出，未登录或会话已失效时同样返回成功
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		h.fail(c, err)
		return
	}

	h.setCookie(c, middleware.SessionCookie, "", -1, true)
	h.setCookie(c, userIDCookie, "", -1, false)
	response.OK(c, nil)
}

// Me 当前登录用户
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, gin.H{"user": user})
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	c.SetSameSite(sameSite(h.cookie.SameSite))
	c.SetCookie(name, value, maxAge, "/", h.cookie.Domain, h.cookie.Secure, httpOnly)
}

// sameSite 解析配置中的 SameSite，未知值按 Lax 处理
func sameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
