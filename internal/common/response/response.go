// Package response 提供 API 响应输出
// 响应体不做统一包装：读取成功直接返回对象/数组，写入成功返回布尔 true，
// 失败返回 {"error": "..."} 并携带对应的 HTTP 状态码
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/common/logger"
)

// ErrorBody 错误响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// OK 成功响应，直接输出数据
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// True 写操作成功响应，响应体为裸布尔值
func True(c *gin.Context) {
	c.JSON(http.StatusOK, true)
}

// Fail 错误响应
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// BadRequest 请求参数错误
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized 认证失败
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	Fail(c, http.StatusUnauthorized, message)
}

// NotFound 资源不存在
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "not found"
	}
	Fail(c, http.StatusNotFound, message)
}

// TooManyRequests 请求频率超限
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}
	Fail(c, http.StatusTooManyRequests, message)
}

// InternalError 服务器内部错误
func InternalError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "internal server error")
}

// FromError 将服务层错误翻译为错误响应
// 业务错误按其状态码输出，其余错误记录日志后统一返回 500，
// 不向客户端泄露底层存储错误文本
func FromError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.Status >= 500 && appErr.Err != nil {
			logger.Error("request failed",
				logger.String("path", c.Request.URL.Path),
				logger.Err(appErr.Err),
			)
		}
		Fail(c, appErr.Status, appErr.Message)
		return
	}

	logger.Error("unexpected error",
		logger.String("path", c.Request.URL.Path),
		logger.Err(err),
	)
	InternalError(c)
}
