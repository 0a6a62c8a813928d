package model

// RawMaterial 原材料表 — 对应 raw_materials
type RawMaterial struct {
	MaterialID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"material_id"`
	Name       string  `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Unit       string  `gorm:"type:varchar(20);not null"                      json:"unit"`
	Cost       float64 `gorm:"not null"                                       json:"cost"`
	Supplier   *string `gorm:"type:varchar(100)"                              json:"supplier,omitempty"`
	BaseModel
}

// TableName 指定表名
func (RawMaterial) TableName() string { return "raw_materials" }
