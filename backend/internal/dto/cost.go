package dto

// ── 成本计算 DTO ──

// CostCalculateRequest 成本计算请求，字段缺失或非数字按 0 处理
type CostCalculateRequest struct {
	LaborCost       Number `json:"labor_cost"`
	EquipmentCost   Number `json:"equipment_cost"`
	MaterialCost    Number `json:"material_cost"`
	DailyProduction Number `json:"daily_production"`
}

// CostBreakdownItem 成本构成
type CostBreakdownItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Ratio    float64 `json:"ratio"` // 占总成本百分比
}

// CostCalculateResponse 成本计算结果
type CostCalculateResponse struct {
	ManufacturingCost float64             `json:"manufacturing_cost"`
	TotalCost         float64             `json:"total_cost"`
	DailyProduction   float64             `json:"daily_production"`
	Breakdown         []CostBreakdownItem `json:"breakdown"`
}
