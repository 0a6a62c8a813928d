package dto

// ── 设备模块 DTO ──

// CreateEquipmentRequest 创建设备请求
type CreateEquipmentRequest struct {
	Name          string   `json:"name"             binding:"required,max=100"`
	MaxCapaPerDay int      `json:"max_capa_per_day"`
	Location      *string  `json:"location"         binding:"omitempty,max=100"`
	OperationCost *float64 `json:"operation_cost"`
}

// EquipmentResponse 设备信息响应
type EquipmentResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	MaxCapaPerDay    int      `json:"max_capa_per_day"`
	Location         *string  `json:"location,omitempty"`
	OperationCost    *float64 `json:"operation_cost,omitempty"`
	RequirementCount int64    `json:"requirement_count"`
	CreatedAt        string   `json:"created_at"`
}
