package dto

// ── 通知模块 DTO ──

// CreateNotificationRequest 创建通知请求，type 缺省为 info
type CreateNotificationRequest struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
}

// NotificationResponse 通知响应
type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}
