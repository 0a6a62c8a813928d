package model

// Process 工序表 — 对应 processes，(product_id, process_order) 唯一
type Process struct {
	ProcessID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"              json:"process_id"`
	Name         string `gorm:"type:varchar(100);not null"                                  json:"name"`
	ProductID    string `gorm:"type:uuid;not null;uniqueIndex:uk_product_process_order"     json:"product_id"`
	ProcessOrder int    `gorm:"not null;uniqueIndex:uk_product_process_order"               json:"process_order"`
	BaseModel

	// 关联
	Product *Product `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (Process) TableName() string { return "processes" }
