package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// EquipmentHandler 设备模块 HTTP 处理器
type EquipmentHandler struct {
	base
	equipmentSvc service.EquipmentService
}

// NewEquipmentHandler 创建 EquipmentHandler
func NewEquipmentHandler(equipmentSvc service.EquipmentService, failer *response.Failer) *EquipmentHandler {
	return &EquipmentHandler{base: base{failer: failer}, equipmentSvc: equipmentSvc}
}

// List 设备列表
// GET /api/v1/equipments
func (h *EquipmentHandler) List(c *gin.Context) {
	list, err := h.equipmentSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.List(c, list)
}

// Create 登记设备
// POST /api/v1/equipments
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if !h.bindOr(c, &req, service.ErrEquipmentNameRequired) {
		return
	}

	equipment, err := h.equipmentSvc.Create(c.Request.Context(), &req, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"equipment": equipment})
}
