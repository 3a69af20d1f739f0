// Package handler 提供 API Handler 的通用辅助函数
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhumingyu/minishop-backend/internal/common/response"
)

// ParseParamID 解析指定路径参数为 int64
// 解析失败时输出 400 响应并返回 false，调用方应 return
func ParseParamID(c *gin.Context, paramName, resourceName string) (int64, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+resourceName+" id")
		return 0, false
	}
	return id, true
}
