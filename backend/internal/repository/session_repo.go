package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// SessionRepository 登录会话数据访问接口
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Revoke(ctx context.Context, id string, at time.Time) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var s model.Session
	err := r.db.WithContext(ctx).
		Where("session_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Revoke 标记吊销，已吊销的会话保持原吊销时间
func (r *sessionRepo) Revoke(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("session_id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
}
