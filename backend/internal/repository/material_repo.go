package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// MaterialRepository 原材料数据访问接口
type MaterialRepository interface {
	Create(ctx context.Context, material *model.RawMaterial) error
	GetByID(ctx context.Context, id string) (*model.RawMaterial, error)
	GetByName(ctx context.Context, name string) (*model.RawMaterial, error)
	List(ctx context.Context) ([]model.RawMaterial, error)
}

type materialRepo struct {
	db *gorm.DB
}

// NewMaterialRepo 创建 MaterialRepository 实例
func NewMaterialRepo(db *gorm.DB) MaterialRepository {
	return &materialRepo{db: db}
}

func (r *materialRepo) Create(ctx context.Context, material *model.RawMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepo) GetByID(ctx context.Context, id string) (*model.RawMaterial, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.RawMaterial
	err := r.db.WithContext(ctx).
		Where("material_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepo) GetByName(ctx context.Context, name string) (*model.RawMaterial, error) {
	var m model.RawMaterial
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *materialRepo) List(ctx context.Context) ([]model.RawMaterial, error) {
	var list []model.RawMaterial
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&list).Error
	return list, err
}
