package model

// ProductionRequirement 生产需求表 — 对应 production_requirements
// 记录某工序所需的设备、原材料与人工成本
type ProductionRequirement struct {
	RequirementID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"requirement_id"`
	ProcessID        string  `gorm:"type:uuid;not null;index"                       json:"process_id"`
	EquipmentID      *string `gorm:"type:uuid;index"                                json:"equipment_id,omitempty"`
	MaterialID       *string `gorm:"type:uuid;index"                                json:"material_id,omitempty"`
	MaterialQuantity float64 `gorm:"not null;default:0"                             json:"material_quantity"`
	DailyProduction  float64 `gorm:"not null;default:0"                             json:"daily_production"`
	LaborCost        float64 `gorm:"not null;default:0"                             json:"labor_cost"`
	BaseModel

	// 关联
	Process   *Process     `gorm:"foreignKey:ProcessID;references:ProcessID"     json:"process,omitempty"`
	Equipment *Equipment   `gorm:"foreignKey:EquipmentID;references:EquipmentID" json:"equipment,omitempty"`
	Material  *RawMaterial `gorm:"foreignKey:MaterialID;references:MaterialID"   json:"material,omitempty"`
}

// TableName 指定表名
func (ProductionRequirement) TableName() string { return "production_requirements" }
