// Package errors 定义业务错误码和错误处理
package errors

import (
	"fmt"
)

// AppError 应用错误
// Status 为对应的 HTTP 状态码，Message 为返回给客户端的文案
type AppError struct {
	Code    int    `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，支持 errors.Is 对同一错误的包装实例做判定
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New 创建新的应用错误
func New(code, status int, message string) *AppError {
	return &AppError{
		Code:    code,
		Status:  status,
		Message: message,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Status:  e.Status,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Status:  e.Status,
		Message: e.Message,
		Err:     err,
	}
}

// 通用错误码 (1000-1999)
var (
	ErrUnknown          = New(1000, 500, "internal server error")
	ErrInvalidParams    = New(1001, 400, "invalid parameters")
	ErrNotFound         = New(1002, 404, "resource not found")
	ErrValidationFailed = New(1003, 400, "validation failed")
	ErrDatabaseError    = New(1004, 500, "internal server error")
	ErrInternalError    = New(1006, 500, "internal server error")
)

// 认证错误码 (2000-2999)
var (
	ErrUnauthorized = New(2000, 401, "Invalid username or password")
)

// 用户错误码 (3000-3999)
var (
	ErrUserNotFound  = New(3000, 404, "User not found")
	ErrUserConflict  = New(3001, 400, "username, email or phone number already taken")
	ErrNoPurchases   = New(3002, 404, "No purchase history found")
)

// 商品错误码 (4000-4999)
var (
	ErrProductNotFound = New(4000, 404, "Product not found")
)

// 评价错误码 (5000-5999)
var (
	ErrReviewNotFound = New(5000, 404, "Review not found")
	ErrReviewRejected = New(5001, 400, "Failed to add review")
	ErrReplyRejected  = New(5002, 400, "Failed to add reply")
)

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}
