package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误分类
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Error 带分类的业务错误，控制器层统一映射 HTTP 状态码
type Error struct {
	Kind    Kind
	Message string
	// UpstreamStatus 仅 KindUpstream 有效，记录 Mercado Livre 返回的状态码
	UpstreamStatus int
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// ==================== 构造函数 ====================

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Auth(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuth, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Upstream 上游接口错误，status 为 0 表示网络层失败
func Upstream(status int, message string) *Error {
	return &Error{Kind: KindUpstream, UpstreamStatus: status, Message: message}
}

// Internal 包装未预期错误，对外只暴露 message
func Internal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// Wrap 保留分类，追加上下文
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{Kind: e.Kind, UpstreamStatus: e.UpstreamStatus, Message: message + ": " + e.Message, Err: e.Err}
	}
	return Internal(err, message)
}

// ==================== 查询 ====================

// KindOf 未分类的错误视为 KindInternal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is 判断错误分类
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus 错误分类 -> HTTP 状态码
func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		// 上游 4xx 属于调用方可修正的问题
		if e.UpstreamStatus >= 400 && e.UpstreamStatus < 500 {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage 对外可见的错误信息，内部错误不暴露原因
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "服务器内部错误"
	}
	return e.Message
}
