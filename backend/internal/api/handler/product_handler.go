package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// ProductHandler 产品模块 HTTP 处理器
type ProductHandler struct {
	base
	productSvc service.ProductService
}

// NewProductHandler 创建 ProductHandler
func NewProductHandler(productSvc service.ProductService, failer *response.Failer) *ProductHandler {
	return &ProductHandler{base: base{failer: failer}, productSvc: productSvc}
}

// List 产品列表
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	list, err := h.productSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.List(c, list)
}

// Create 创建产品，同时生成 preparing 出货状态
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.bindOr(c, &req, service.ErrProductNameRequired) {
		return
	}

	product, err := h.productSvc.Create(c.Request.Context(), &req, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"product": product})
}

// UpdateShipping 更新出货状态
// PUT /api/v1/products/:id/shipping
func (h *ProductHandler) UpdateShipping(c *gin.Context) {
	var req dto.UpdateShippingRequest
	if !h.bindOr(c, &req, service.ErrInvalidShippingStatus) {
		return
	}

	shipping, err := h.productSvc.UpdateShipping(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, gin.H{"shipping_status": shipping})
}
