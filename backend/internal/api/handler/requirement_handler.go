package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// RequirementHandler 生产需求模块 HTTP 处理器
type RequirementHandler struct {
	base
	requirementSvc service.RequirementService
}

// NewRequirementHandler 创建 RequirementHandler
func NewRequirementHandler(requirementSvc service.RequirementService, failer *response.Failer) *RequirementHandler {
	return &RequirementHandler{base: base{failer: failer}, requirementSvc: requirementSvc}
}

// List 生产需求列表，附带计算后的单件制造成本
// GET /api/v1/production-requirements
func (h *RequirementHandler) List(c *gin.Context) {
	list, err := h.requirementSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.List(c, list)
}

// Create 登记生产需求
// POST /api/v1/production-requirements
func (h *RequirementHandler) Create(c *gin.Context) {
	var req dto.CreateRequirementRequest
	if !h.bindOr(c, &req, service.ErrInvalidRequirement) {
		return
	}

	requirement, err := h.requirementSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"requirement": requirement})
}
