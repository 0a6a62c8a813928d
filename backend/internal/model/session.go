package model

import "time"

// Session 登录会话表 — 对应 sessions
// SessionID 与会话令牌中的 jti 一致
type Session struct {
	SessionID string     `gorm:"type:uuid;primaryKey"        json:"session_id"`
	UserID    string     `gorm:"type:uuid;not null;index"    json:"user_id"`
	ExpiresAt time.Time  `gorm:"not null"                    json:"expires_at"`
	RevokedAt *time.Time `                                   json:"revoked_at,omitempty"`
	UserAgent string     `gorm:"type:varchar(255);not null"  json:"user_agent"`
	IP        string     `gorm:"type:varchar(64);not null"   json:"ip"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (Session) TableName() string { return "sessions" }

// Active 会话未吊销且未过期
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
