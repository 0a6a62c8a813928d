package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// CustomerRepository 客户数据访问接口
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	GetByName(ctx context.Context, name string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

// NewCustomerRepo 创建 CustomerRepository 实例
func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var c model.Customer
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) GetByName(ctx context.Context, name string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List 按创建时间倒序，附带客户下的产品
func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var list []model.Customer
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Select("product_id", "name", "customer_id").Order("created_at DESC")
		}).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
