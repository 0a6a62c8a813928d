package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
	"github.com/CM6156/CoilmasterThailand/backend/pkg/response"
)

// base 各 Handler 共用的错误输出与上下文读取
type base struct {
	failer *response.Failer
}

func (b base) fail(c *gin.Context, err error) {
	b.failer.Fail(c, err)
}

// bind 绑定 JSON 请求体，失败时写入 400 并返回 false
func (b base) bind(c *gin.Context, obj interface{}) bool {
	return b.bindOr(c, obj, apperrors.ErrValidation)
}

// bindOr 同 bind，校验失败时返回 invalid
// 请求体超过 BodyLimit 时返回 ErrBodyTooLarge
func (b base) bindOr(c *gin.Context, obj interface{}, invalid *apperrors.Error) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			b.fail(c, apperrors.ErrBodyTooLarge)
			return false
		}
		b.fail(c, invalid.Wrap(err))
		return false
	}
	return true
}

// mustUserID 从 Gin 上下文中提取 SessionAuth 注入的 user_id
// 缺失时写入 401 并返回 false，调用方应直接 return
func (b base) mustUserID(c *gin.Context) (string, bool) {
	id := c.GetString("user_id")
	if id == "" {
		b.fail(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return id, true
}

// actor 当前操作人用户名，用于通知文案，未登录时为空
func actor(c *gin.Context) string {
	return c.GetString("username")
}
