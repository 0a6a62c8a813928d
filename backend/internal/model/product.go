package model

import "time"

// Product 产品表 — 对应 products
type Product struct {
	ProductID  string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"product_id"`
	Name       string  `gorm:"type:varchar(100);not null"                     json:"name"`
	CustomerID string  `gorm:"type:uuid;not null;index"                       json:"customer_id"`
	ManagerID  *string `gorm:"type:uuid"                                      json:"manager_id,omitempty"`
	BaseModel

	// 关联
	Customer       *Customer       `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
	Manager        *User           `gorm:"foreignKey:ManagerID;references:UserID"      json:"manager,omitempty"`
	Processes      []Process       `gorm:"foreignKey:ProductID;references:ProductID"   json:"processes,omitempty"`
	ShippingStatus *ShippingStatus `gorm:"foreignKey:ProductID;references:ProductID"   json:"shipping_status,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string { return "products" }

// 出货状态，取值同时作为翻译键
const (
	ShippingPreparing = "preparing"
	ShippingInTransit = "in_transit"
	ShippingArrived   = "arrived"
	ShippingDelayed   = "delayed"
)

// ValidShippingStatus 判断出货状态是否合法
func ValidShippingStatus(s string) bool {
	switch s {
	case ShippingPreparing, ShippingInTransit, ShippingArrived, ShippingDelayed:
		return true
	}
	return false
}

// ShippingStatus 出货状态表 — 对应 shipping_statuses（与 products 1:1）
type ShippingStatus struct {
	ShippingID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shipping_id"`
	ProductID    string     `gorm:"type:uuid;not null;uniqueIndex"                 json:"product_id"`
	Status       string     `gorm:"type:varchar(20);not null;default:'preparing'"  json:"status"`
	EtaDate      *time.Time `gorm:"type:date"                                      json:"eta_date,omitempty"`
	ShippingDate *time.Time `gorm:"type:date"                                      json:"shipping_date,omitempty"`
	BaseModel
}

// TableName 指定表名
func (ShippingStatus) TableName() string { return "shipping_statuses" }
