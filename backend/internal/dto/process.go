package dto

// ── 工序模块 DTO ──

// CreateProcessRequest 创建工序请求
type CreateProcessRequest struct {
	Name         string `json:"name"          binding:"required,max=100"`
	ProductID    string `json:"product_id"    binding:"required"`
	ProcessOrder int    `json:"process_order"`
}

// ProcessProduct 工序所属产品
type ProcessProduct struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Customer *RefResponse `json:"customer,omitempty"`
}

// ProcessResponse 工序信息响应
type ProcessResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ProcessOrder     int             `json:"process_order"`
	Product          *ProcessProduct `json:"product,omitempty"`
	RequirementCount int64           `json:"requirement_count"`
	CreatedAt        string          `json:"created_at"`
}
