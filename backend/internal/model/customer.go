package model

// Customer 客户表 — 对应 customers
type Customer struct {
	CustomerID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"customer_id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	BaseModel

	// 关联
	Products []Product `gorm:"foreignKey:CustomerID;references:CustomerID" json:"products,omitempty"`
}

// TableName 指定表名
func (Customer) TableName() string { return "customers" }
