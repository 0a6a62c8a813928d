package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// ProcessHandler 工序模块 HTTP 处理器
type ProcessHandler struct {
	base
	processSvc service.ProcessService
}

// NewProcessHandler 创建 ProcessHandler
func NewProcessHandler(processSvc service.ProcessService, failer *response.Failer) *ProcessHandler {
	return &ProcessHandler{base: base{failer: failer}, processSvc: processSvc}
}

// List 工序列表
// GET /api/v1/processes
func (h *ProcessHandler) List(c *gin.Context) {
	list, err := h.processSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.List(c, list)
}

// Create 创建工序
// POST /api/v1/processes
func (h *ProcessHandler) Create(c *gin.Context) {
	var req dto.CreateProcessRequest
	if !h.bindOr(c, &req, service.ErrProcessNameRequired) {
		return
	}

	process, err := h.processSvc.Create(c.Request.Context(), &req, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"process": process})
}
