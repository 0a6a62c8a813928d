package dto

// ── 原材料模块 DTO ──

// CreateMaterialRequest 创建原材料请求
type CreateMaterialRequest struct {
	Name     string  `json:"name"     binding:"required,max=100"`
	Unit     string  `json:"unit"     binding:"max=20"`
	Cost     float64 `json:"cost"`
	Supplier *string `json:"supplier" binding:"omitempty,max=100"`
}

// MaterialResponse 原材料信息响应
type MaterialResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Unit             string  `json:"unit"`
	Cost             float64 `json:"cost"`
	Supplier         *string `json:"supplier,omitempty"`
	RequirementCount int64   `json:"requirement_count"`
	CreatedAt        string  `json:"created_at"`
}
