package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/api/middleware"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	base
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, failer *response.Failer) *ExportHandler {
	return &ExportHandler{base: base{failer: failer}, exportSvc: exportSvc}
}

// Products 导出产品列表，表头与状态按请求语言显示
// GET /api/v1/export/products
func (h *ExportHandler) Products(c *gin.Context) {
	buf, filename, err := h.exportSvc.ProductsXLSX(c.Request.Context(), middleware.Lang(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Attachment(c, contentTypeXLSX, filename, buf.Bytes())
}

// Shipping 导出出货预计到达日历
// GET /api/v1/export/shipping.ics
func (h *ExportHandler) Shipping(c *gin.Context) {
	data, filename, err := h.exportSvc.ShippingICS(c.Request.Context(), middleware.Lang(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Attachment(c, contentTypeICS, filename, data)
}
