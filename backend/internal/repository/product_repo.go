package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// ProductRepository 产品数据访问接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepo 创建 ProductRepository 实例
func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("product_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List 按创建时间倒序，附带客户、负责人、工序（按顺序）与出货状态
func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Manager").
		Preload("Processes", func(db *gorm.DB) *gorm.DB {
			return db.Order("process_order ASC")
		}).
		Preload("ShippingStatus").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
