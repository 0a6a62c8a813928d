package response

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"
)

// MessageFunc 按请求语言本地化错误提示，返回空串时使用错误自带的默认提示
type MessageFunc func(c *gin.Context, key string) string

// Failer 将业务错误写成统一响应
type Failer struct {
	message MessageFunc
	logger  *zap.Logger
}

// NewFailer 创建 Failer，message 为 nil 时只使用默认提示
func NewFailer(message MessageFunc, logger *zap.Logger) *Failer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Failer{message: message, logger: logger}
}

// Fail 按错误类别写入响应
// 非业务错误与 Internal 类别记录日志后统一返回通用提示，不暴露细节
func (f *Failer) Fail(c *gin.Context, err error) {
	status, body := f.render(c, err)
	c.JSON(status, body)
}

// Abort 同 Fail，并终止中间件链
func (f *Failer) Abort(c *gin.Context, err error) {
	status, body := f.render(c, err)
	c.AbortWithStatusJSON(status, body)
}

// Message 返回错误的本地化提示，不写响应，用于部分成功的结果明细
func (f *Failer) Message(c *gin.Context, err error) string {
	return f.localize(c, f.resolve(c, err))
}

func (f *Failer) render(c *gin.Context, err error) (int, Response) {
	e := f.resolve(c, err)
	return e.Kind.HTTPStatus(), Response{Code: e.Code, Message: f.localize(c, e)}
}

// resolve 取出业务错误，非业务错误与 Internal 类别记录日志
func (f *Failer) resolve(c *gin.Context, err error) *apperrors.Error {
	e, ok := apperrors.As(err)
	if !ok || e.Kind == apperrors.KindInternal {
		f.logger.Error("请求处理失败",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		if !ok {
			e = apperrors.ErrInternal
		}
	}
	return e
}

func (f *Failer) localize(c *gin.Context, e *apperrors.Error) string {
	if f.message == nil || e.Key == "" {
		return e.Message
	}
	if msg := f.message(c, e.Key); msg != "" {
		return msg
	}
	return e.Message
}
