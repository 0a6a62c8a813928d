package dto

// ── 生产需求模块 DTO ──

// CreateRequirementRequest 创建生产需求请求
type CreateRequirementRequest struct {
	ProcessID        string  `json:"process_id"        binding:"required"`
	EquipmentID      *string `json:"equipment_id"`
	MaterialID       *string `json:"material_id"`
	MaterialQuantity Number  `json:"material_quantity"`
	DailyProduction  Number  `json:"daily_production"`
	LaborCost        Number  `json:"labor_cost"`
}

// RequirementResponse 生产需求响应，附带计算出的单件制造成本
type RequirementResponse struct {
	ID                string       `json:"id"`
	Process           *RefResponse `json:"process,omitempty"`
	Equipment         *RefResponse `json:"equipment,omitempty"`
	Material          *RefResponse `json:"material,omitempty"`
	MaterialQuantity  float64      `json:"material_quantity"`
	DailyProduction   float64      `json:"daily_production"`
	LaborCost         float64      `json:"labor_cost"`
	EquipmentCost     float64      `json:"equipment_cost"`
	MaterialCost      float64      `json:"material_cost"`
	ManufacturingCost float64      `json:"manufacturing_cost"`
	CreatedAt         string       `json:"created_at"`
}
