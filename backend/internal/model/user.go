package model

import "time"

// 用户角色
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User 用户表 — 对应 users
type User struct {
	UserID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Email        *string    `gorm:"type:varchar(255);uniqueIndex"                  json:"email,omitempty"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;default:'user'"       json:"role"`
	Nickname     string     `gorm:"type:varchar(100);not null;default:''"          json:"nickname"`
	LastLoginAt  *time.Time `                                                      json:"last_login_at,omitempty"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
