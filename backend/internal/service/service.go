package service

import (
	"go.uber.org/zap"

	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/jwt"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/metrics"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/notify"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	User         UserService
	Customer     CustomerService
	Product      ProductService
	Process      ProcessService
	Equipment    EquipmentService
	Material     MaterialService
	Requirement  RequirementService
	Notification NotificationService
	Translation  TranslationService
	Export       ExportService
}

// Deps Service 依赖的基础设施
// Revoker 为 nil 表示 Redis 不可用，会话只以数据库校验
type Deps struct {
	Config     *config.Config
	Repo       *repository.Repository
	JWT        *jwt.Manager
	Revoker    SessionRevoker
	Translator TranslationStore
	Notifier   notify.Notifier
	Metrics    metrics.Recorder
	Logger     *zap.Logger
}

// NewService 创建 Service 聚合
func NewService(d Deps) *Service {
	notification := NewNotificationService(d.Repo, d.Notifier, d.Metrics, d.Logger)
	return &Service{
		Auth:         NewAuthService(d.Config, d.Repo, d.JWT, d.Revoker, notification, d.Metrics, d.Logger),
		User:         NewUserService(d.Repo, d.Logger),
		Customer:     NewCustomerService(d.Repo, notification, d.Logger),
		Product:      NewProductService(d.Repo, notification, d.Logger),
		Process:      NewProcessService(d.Repo, notification, d.Logger),
		Equipment:    NewEquipmentService(d.Repo, notification, d.Logger),
		Material:     NewMaterialService(d.Repo, notification, d.Logger),
		Requirement:  NewRequirementService(d.Repo, d.Logger),
		Notification: notification,
		Translation:  NewTranslationService(d.Translator),
		Export:       NewExportService(d.Repo, d.Translator, d.Logger),
	}
}
