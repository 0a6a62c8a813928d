package model

// Translation 翻译表 — 对应 translations，(key, language) 唯一
type Translation struct {
	TranslationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"        json:"translation_id"`
	Key           string `gorm:"type:varchar(150);not null;uniqueIndex:uk_key_language" json:"key"`
	Language      string `gorm:"type:varchar(5);not null;uniqueIndex:uk_key_language"   json:"language"`
	Value         string `gorm:"type:text;not null"                                     json:"value"`
	BaseModel
}

// TableName 指定表名
func (Translation) TableName() string { return "translations" }
