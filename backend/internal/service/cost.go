package service

import (
	"math"

	"github.com/CM6156/CoilmasterThailand/backend/internal/dto"
)

// 成本构成类别，同时作为翻译键
const (
	CostCategoryLabor     = "labor_cost"
	CostCategoryEquipment = "equipment_cost"
	CostCategoryMaterial  = "material_cost"
)

// CalculateManufacturingCost 单件制造成本 = (人工 + 设备 + 材料) / 日产量
// 日产量不大于 0 时按 1 计
func CalculateManufacturingCost(labor, equipment, material, dailyProduction float64) float64 {
	return (clean(labor) + clean(equipment) + clean(material)) / math.Max(clean(dailyProduction), 1)
}

// CalculateCost 成本计算器，附带各项占总成本的百分比
func CalculateCost(req *dto.CostCalculateRequest) *dto.CostCalculateResponse {
	labor := clean(req.LaborCost.Float64())
	equipment := clean(req.EquipmentCost.Float64())
	material := clean(req.MaterialCost.Float64())
	production := clean(req.DailyProduction.Float64())

	total := labor + equipment + material
	ratio := func(amount float64) float64 {
		if total == 0 {
			return 0
		}
		return amount / total * 100
	}

	return &dto.CostCalculateResponse{
		ManufacturingCost: CalculateManufacturingCost(labor, equipment, material, production),
		TotalCost:         total,
		DailyProduction:   production,
		Breakdown: []dto.CostBreakdownItem{
			{Category: CostCategoryLabor, Amount: labor, Ratio: ratio(labor)},
			{Category: CostCategoryEquipment, Amount: equipment, Ratio: ratio(equipment)},
			{Category: CostCategoryMaterial, Amount: material, Ratio: ratio(material)},
		},
	}
}

// clean 非有限值按 0 处理
func clean(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
