package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
)

// ShippingStatusRepository 出货状态数据访问接口
type ShippingStatusRepository interface {
	Create(ctx context.Context, status *model.ShippingStatus) error
	GetByProductID(ctx context.Context, productID string) (*model.ShippingStatus, error)
	Upsert(ctx context.Context, status *model.ShippingStatus) error
}

type shippingStatusRepo struct {
	db *gorm.DB
}

// NewShippingStatusRepo 创建 ShippingStatusRepository 实例
func NewShippingStatusRepo(db *gorm.DB) ShippingStatusRepository {
	return &shippingStatusRepo{db: db}
}

func (r *shippingStatusRepo) Create(ctx context.Context, status *model.ShippingStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *shippingStatusRepo) GetByProductID(ctx context.Context, productID string) (*model.ShippingStatus, error) {
	if !validID(productID) {
		return nil, gorm.ErrRecordNotFound
	}
	var s model.ShippingStatus
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert 以 product_id 为冲突键写入，不存在时创建
func (r *shippingStatusRepo) Upsert(ctx context.Context, status *model.ShippingStatus) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":        status.Status,
				"eta_date":      status.EtaDate,
				"shipping_date": status.ShippingDate,
				"updated_at":    gorm.Expr("NOW()"),
			}),
		}).
		Create(status).Error
}
