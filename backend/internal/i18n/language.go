package i18n

import (
	"golang.org/x/text/language"
)

// Language 界面语言代码
type Language string

const (
	Korean  Language = "ko"
	Thai    Language = "th"
	English Language = "en"
)

// Supported 支持的语言，顺序与 matcher 一致
var Supported = []Language{Korean, Thai, English}

var matcher = language.NewMatcher([]language.Tag{
	language.Korean,
	language.Thai,
	language.English,
})

// Parse 解析语言代码，不支持时 ok=false
func Parse(s string) (Language, bool) {
	switch Language(s) {
	case Korean, Thai, English:
		return Language(s), true
	}
	return "", false
}

// MatchAcceptLanguage 按 Accept-Language 头匹配支持的语言
// 无法解析或无任何匹配时返回 def
func MatchAcceptLanguage(header string, def Language) Language {
	if header == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return Supported[idx]
}

// Negotiate 决定请求语言
// 优先级：显式参数 > 会话中保存的选择 > Accept-Language > 默认语言
func Negotiate(explicit, saved, acceptLanguage string, def Language) Language {
	if l, ok := Parse(explicit); ok {
		return l
	}
	if l, ok := Parse(saved); ok {
		return l
	}
	return MatchAcceptLanguage(acceptLanguage, def)
}
