package handler

import (
	"github.com/CM6156/CoilmasterThailand/backend/config"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Customer     *CustomerHandler
	Product      *ProductHandler
	Process      *ProcessHandler
	Equipment    *EquipmentHandler
	Material     *MaterialHandler
	Requirement  *RequirementHandler
	Notification *NotificationHandler
	Cost         *CostHandler
	Translation  *TranslationHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service, failer *response.Failer) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth, svc.User, cfg.Auth, failer),
		User:         NewUserHandler(svc.User, failer),
		Customer:     NewCustomerHandler(svc.Customer, failer),
		Product:      NewProductHandler(svc.Product, failer),
		Process:      NewProcessHandler(svc.Process, failer),
		Equipment:    NewEquipmentHandler(svc.Equipment, failer),
		Material:     NewMaterialHandler(svc.Material, failer),
		Requirement:  NewRequirementHandler(svc.Requirement, failer),
		Notification: NewNotificationHandler(svc.Notification, failer),
		Cost:         NewCostHandler(failer),
		Translation:  NewTranslationHandler(svc.Translation, failer),
		Export:       NewExportHandler(svc.Export, failer),
	}
}
