package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// MaterialHandler 原材料模块 HTTP 处理器
type MaterialHandler struct {
	base
	materialSvc service.MaterialService
}

// NewMaterialHandler 创建 MaterialHandler
func NewMaterialHandler(materialSvc service.MaterialService, failer *response.Failer) *MaterialHandler {
	return &MaterialHandler{base: base{failer: failer}, materialSvc: materialSvc}
}

// List 原材料列表
// GET /api/v1/materials
func (h *MaterialHandler) List(c *gin.Context) {
	list, err := h.materialSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.List(c, list)
}

// Create 登记原材料
// POST /api/v1/materials
func (h *MaterialHandler) Create(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if !h.bindOr(c, &req, service.ErrMaterialNameRequired) {
		return
	}

	material, err := h.materialSvc.Create(c.Request.Context(), &req, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"material": material})
}
