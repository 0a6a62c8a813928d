package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// CostHandler 成本计算 HTTP 处理器
type CostHandler struct {
	base
}

// NewCostHandler 创建 CostHandler
func NewCostHandler(failer *response.Failer) *CostHandler {
	return &CostHandler{base: base{failer: failer}}
}

// Calculate 计算单件制造成本与构成比例
// POST /api/v1/costs/calculate
func (h *CostHandler) Calculate(c *gin.Context) {
	var req dto.CostCalculateRequest
	if !h.bind(c, &req) {
		return
	}
	response.OK(c, service.CalculateCost(&req))
}
