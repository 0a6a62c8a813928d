package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// ProcessRepository 工序数据访问接口
type ProcessRepository interface {
	Create(ctx context.Context, process *model.Process) error
	GetByID(ctx context.Context, id string) (*model.Process, error)
	GetByProductAndOrder(ctx context.Context, productID string, order int) (*model.Process, error)
	List(ctx context.Context) ([]model.Process, error)
}

type processRepo struct {
	db *gorm.DB
}

// NewProcessRepo 创建 ProcessRepository 实例
func NewProcessRepo(db *gorm.DB) ProcessRepository {
	return &processRepo{db: db}
}

func (r *processRepo) Create(ctx context.Context, process *model.Process) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(process).Error
}

func (r *processRepo) GetByID(ctx context.Context, id string) (*model.Process, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var p model.Process
	err := r.db.WithContext(ctx).
		Where("process_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *processRepo) GetByProductAndOrder(ctx context.Context, productID string, order int) (*model.Process, error) {
	if !validID(productID) {
		return nil, gorm.ErrRecordNotFound
	}
	var p model.Process
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND process_order = ?", productID, order).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List 按产品名称、工序顺序升序，附带产品与客户
func (r *processRepo) List(ctx context.Context) ([]model.Process, error) {
	var list []model.Process
	err := r.db.WithContext(ctx).
		Select("processes.*").
		Joins("JOIN products ON products.product_id = processes.product_id").
		Preload("Product.Customer").
		Order("products.name ASC, processes.process_order ASC").
		Find(&list).Error
	return list, err
}
