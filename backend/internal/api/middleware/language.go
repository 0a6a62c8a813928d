package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

const (
	langKey        = "lang"
	sessionLangKey = "language"
	// SessionName 界面偏好会话 Cookie 名
	SessionName = "transfer_prefs"
)

// Language 决定本次请求的界面语言并写入上下文
// 优先级：?lang= > 会话中保存的选择 > Accept-Language > 默认语言
// 需在 sessions.Sessions 之后注册
func Language(def i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved, _ := sessions.Default(c).Get(sessionLangKey).(string)
		lang := i18n.Negotiate(c.Query("lang"), saved, c.GetHeader("Accept-Language"), def)
		c.Set(langKey, lang)
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}

// Lang 读取请求语言，未经过 Language 中间件时返回韩语
func Lang(c *gin.Context) i18n.Language {
	if v, ok := c.Get(langKey); ok {
		if l, ok := v.(i18n.Language); ok {
			return l
		}
	}
	return i18n.Korean
}

// SaveLanguage 把语言选择保存到会话 Cookie
func SaveLanguage(c *gin.Context, lang i18n.Language) error {
	s := sessions.Default(c)
	s.Set(sessionLangKey, string(lang))
	if err := s.Save(); err != nil {
		return err
	}
	c.Set(langKey, lang)
	return nil
}

// Texts 非阻塞文本查询
type Texts interface {
	T(lang i18n.Language, key string) string
}

// Localize 基于请求语言的错误提示本地化
// 翻译未就绪（返回键本身）时交给调用方使用默认提示
func Localize(texts Texts) response.MessageFunc {
	return func(c *gin.Context, key string) string {
		v := texts.T(Lang(c), key)
		if v == key {
			return ""
		}
		return v
	}
}
