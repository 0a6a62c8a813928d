package dto

// ── 客户模块 DTO ──

// CreateCustomerRequest 创建客户请求
type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CustomerResponse 客户信息响应
type CustomerResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Products     []RefResponse `json:"products"`
	ProductCount int           `json:"product_count"`
	CreatedAt    string        `json:"created_at"`
}
