package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
	"github.com/CM6156/CoilmasterThailand/backend/internal/service"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// CustomerHandler 客户模块 HTTP 处理器
type CustomerHandler struct {
	base
	customerSvc service.CustomerService
}

// NewCustomerHandler 创建 CustomerHandler
func NewCustomerHandler(customerSvc service.CustomerService, failer *response.Failer) *CustomerHandler {
	return &CustomerHandler{base: base{failer: failer}, customerSvc: customerSvc}
}

// List 客户列表
// GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	list, err := h.customerSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.List(c, list)
}

// Create 创建客户
// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.bindOr(c, &req, service.ErrCustomerNameRequired) {
		return
	}

	customer, err := h.customerSvc.Create(c.Request.Context(), &req, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, gin.H{"customer": customer})
}
