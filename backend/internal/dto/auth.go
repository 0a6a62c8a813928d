package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest 注册请求
// 长度与格式以服务层校验为准
type SignupRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Email    *string `json:"email"`
	Nickname *string `json:"nickname"`
}

// SessionMeta 登录时记录的客户端信息
type SessionMeta struct {
	UserAgent string
	IP        string
}
