package dto

// ── 多语言模块 DTO ──

// TranslationsRequest 批量获取翻译请求
// 字段校验在 Service 中进行，keys 缺失优先于语言错误报告
type TranslationsRequest struct {
	Keys     []string `json:"keys"`
	Language string   `json:"language"`
}

// TranslationValues 各语言的翻译值，未提供的语言保持不变
type TranslationValues struct {
	Ko *string `json:"ko"`
	Th *string `json:"th"`
	En *string `json:"en"`
}

// UpsertTranslationRequest 按键写入多个语言的翻译
type UpsertTranslationRequest struct {
	Key    string            `json:"key"    binding:"required,max=150"`
	Values TranslationValues `json:"values"`
}

// SetLanguageRequest 设置界面语言请求
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,oneof=ko th en"`
}
