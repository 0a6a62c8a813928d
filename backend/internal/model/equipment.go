package model

// Equipment 设备表 — 对应 equipments
type Equipment struct {
	EquipmentID   string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"equipment_id"`
	Name          string   `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	MaxCapaPerDay int      `gorm:"not null"                                       json:"max_capa_per_day"`
	Location      *string  `gorm:"type:varchar(100)"                              json:"location,omitempty"`
	OperationCost *float64 `                                                      json:"operation_cost,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Equipment) TableName() string { return "equipments" }
