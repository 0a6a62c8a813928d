package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// EquipmentRepository 设备数据访问接口
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *model.Equipment) error
	GetByID(ctx context.Context, id string) (*model.Equipment, error)
	GetByName(ctx context.Context, name string) (*model.Equipment, error)
	List(ctx context.Context) ([]model.Equipment, error)
}

type equipmentRepo struct {
	db *gorm.DB
}

// NewEquipmentRepo 创建 EquipmentRepository 实例
func NewEquipmentRepo(db *gorm.DB) EquipmentRepository {
	return &equipmentRepo{db: db}
}

func (r *equipmentRepo) Create(ctx context.Context, equipment *model.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

func (r *equipmentRepo) GetByID(ctx context.Context, id string) (*model.Equipment, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var e model.Equipment
	err := r.db.WithContext(ctx).
		Where("equipment_id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepo) GetByName(ctx context.Context, name string) (*model.Equipment, error) {
	var e model.Equipment
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepo) List(ctx context.Context) ([]model.Equipment, error) {
	var list []model.Equipment
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&list).Error
	return list, err
}
