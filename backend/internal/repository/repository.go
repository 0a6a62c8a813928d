package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Translation  TranslationRepository
	Customer     CustomerRepository
	Product      ProductRepository
	Shipping     ShippingStatusRepository
	Process      ProcessRepository
	Equipment    EquipmentRepository
	Material     MaterialRepository
	Requirement  RequirementRepository
	Notification NotificationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Session:      NewSessionRepo(db),
		Translation:  NewTranslationRepo(db),
		Customer:     NewCustomerRepo(db),
		Product:      NewProductRepo(db),
		Shipping:     NewShippingStatusRepo(db),
		Process:      NewProcessRepo(db),
		Equipment:    NewEquipmentRepo(db),
		Material:     NewMaterialRepo(db),
		Requirement:  NewRequirementRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

// validID 主键均为 UUID；无法解析的 id 按记录不存在处理，不下发到数据库
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
