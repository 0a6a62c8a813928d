package dto

// TimeLayout 响应中的时间格式
const TimeLayout = "2006-01-02T15:04:05Z"

// DateLayout 出货日期格式
const DateLayout = "2006-01-02"

// ── 认证模块响应 ──

// LoginResult 登录结果，Token 只写入 Cookie，不出现在响应体
type LoginResult struct {
	Token     string       `json:"-"`
	ExpiresIn int          `json:"-"` // 秒
	User      UserResponse `json:"user"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	Nickname    string  `json:"nickname"`
	Email       *string `json:"email,omitempty"`
	CreatedAt   string  `json:"created_at"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
}

// RefResponse 关联实体简要信息
type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ManagerResponse 产品负责人简要信息
type ManagerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
