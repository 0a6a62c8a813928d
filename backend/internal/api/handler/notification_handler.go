package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// NotificationHandler 通知模块 HTTP 处理器
type NotificationHandler struct {
	base
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notificationSvc service.NotificationService, failer *response.Failer) *NotificationHandler {
	return &NotificationHandler{base: base{failer: failer}, notificationSvc: notificationSvc}
}

// List 最近的通知
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.notificationSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.List(c, list)
}

// Create 新增通知
// POST /api/v1/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.bindOr(c, &req, service.ErrNotificationMessageRequired) {
		return
	}

	notification, err := h.notificationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"notification": notification})
}
