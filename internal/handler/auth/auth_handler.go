// Package auth 提供登录相关的 HTTP Handler
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/zhumingyu/minishop-backend/internal/common/response"
	authService "github.com/zhumingyu/minishop-backend/internal/service/auth"
)

// Handler 认证处理器
type Handler struct {
	authService *authService.Service
}

// NewHandler 创建认证处理器
func NewHandler(authSvc *authService.Service) *Handler {
	return &Handler{authService: authSvc}
}

// Login 登录，成功返回 {"user_id": N}
func (h *Handler) Login(c *gin.Context) {
	var req authService.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password_hash are required")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, resp)
}
