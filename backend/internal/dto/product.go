package dto

// ── 产品模块 DTO ──

// CreateProductRequest 创建产品请求
type CreateProductRequest struct {
	Name       string  `json:"name"        binding:"required,max=100"`
	CustomerID string  `json:"customer_id" binding:"required"`
	ManagerID  *string `json:"manager_id"`
}

// UpdateShippingRequest 更新出货状态请求，日期格式 YYYY-MM-DD
type UpdateShippingRequest struct {
	Status       string  `json:"status"        binding:"required"`
	EtaDate      *string `json:"eta_date"`
	ShippingDate *string `json:"shipping_date"`
}

// ProcessBrief 产品下的工序
type ProcessBrief struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProcessOrder int    `json:"process_order"`
}

// ShippingResponse 出货状态
type ShippingResponse struct {
	Status       string  `json:"status"`
	EtaDate      *string `json:"eta_date,omitempty"`
	ShippingDate *string `json:"shipping_date,omitempty"`
	UpdatedAt    string  `json:"updated_at"`
}

// ProductResponse 产品信息响应
type ProductResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Customer       *RefResponse      `json:"customer,omitempty"`
	Manager        *ManagerResponse  `json:"manager,omitempty"`
	Processes      []ProcessBrief    `json:"processes"`
	ProcessCount   int               `json:"process_count"`
	ShippingStatus *ShippingResponse `json:"shipping_status,omitempty"`
	CreatedAt      string            `json:"created_at"`
}
