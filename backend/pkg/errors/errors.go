// Package errors 定义业务错误分类
// 服务层返回 *Error 哨兵（或包装后的基础设施错误），Handler 按 Kind 映射 HTTP 状态码
package errors

import (
	"errors"
	"net/http"
)

// Kind 错误类别
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
)

// HTTPStatus 类别对应的 HTTP 状态码
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Error 业务错误
//   - Code: 响应体中的业务码
//   - Key: 翻译键，Handler 按请求语言本地化
//   - Message: 默认（韩语）提示，翻译缺失时使用
type Error struct {
	Kind    Kind
	Code    int
	Key     string
	Message string
	cause   error
}

// New 创建业务错误哨兵
func New(kind Kind, code int, key, message string) *Error {
	return &Error{Kind: kind, Code: code, Key: key, Message: message}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is 业务码相同即视为同一错误，Wrap 后的副本仍能匹配哨兵
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap 返回携带底层原因的副本，哨兵本身不被修改
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// As 从错误链中提取 *Error
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf 返回错误类别，非业务错误一律视为 Internal
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// ── 通用哨兵 ──

var (
	ErrValidation      = New(KindValidation, 10001, "error_validation", "입력값이 올바르지 않습니다")
	ErrUnauthorized    = New(KindUnauthorized, 10002, "error_unauthorized", "로그인이 필요합니다")
	ErrForbidden       = New(KindForbidden, 10003, "error_forbidden", "권한이 없습니다")
	ErrTooManyRequests = New(KindTooManyRequests, 10004, "error_too_many_requests", "요청이 너무 많습니다. 잠시 후 다시 시도하세요")
	ErrBodyTooLarge    = New(KindValidation, 10005, "error_body_too_large", "요청 본문이 너무 큽니다")
	ErrInternal        = New(KindInternal, 50000, "error_internal", "서버 오류가 발생했습니다")
)
