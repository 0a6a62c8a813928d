package dto

// ── 用户模块 DTO ──

// UpdateProfileRequest 修改个人资料请求
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname" binding:"omitempty,max=100"`
	Email    *string `json:"email"    binding:"omitempty,max=255"`
}
