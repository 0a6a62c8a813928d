package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// TranslationRepository 翻译数据访问接口
type TranslationRepository interface {
	GetMany(ctx context.Context, keys []string, language string) ([]model.Translation, error)
	Upsert(ctx context.Context, t *model.Translation) error
	ListAll(ctx context.Context) ([]model.Translation, error)
}

type translationRepo struct {
	db *gorm.DB
}

// NewTranslationRepo 创建 TranslationRepository 实例
func NewTranslationRepo(db *gorm.DB) TranslationRepository {
	return &translationRepo{db: db}
}

func (r *translationRepo) GetMany(ctx context.Context, keys []string, language string) ([]model.Translation, error) {
	var list []model.Translation
	if len(keys) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).
		Where("language = ? AND key IN ?", language, keys).
		Find(&list).Error
	return list, err
}

// Upsert 按 (key, language) 插入或更新 value
func (r *translationRepo) Upsert(ctx context.Context, t *model.Translation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}, {Name: "language"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      t.Value,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(t).Error
}

func (r *translationRepo) ListAll(ctx context.Context) ([]model.Translation, error) {
	var list []model.Translation
	err := r.db.WithContext(ctx).
		Order("language ASC, key ASC").
		Find(&list).Error
	return list, err
}
