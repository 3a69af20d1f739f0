// Package user 提供用户资料相关的 HTTP Handler
package user

import (
	"github.com/gin-gonic/gin"

	"github.com/zhumingyu/minishop-backend/internal/common/handler"
	"github.com/zhumingyu/minishop-backend/internal/common/response"
	userService "github.com/zhumingyu/minishop-backend/internal/service/user"
)

// Handler 用户处理器
type Handler struct {
	userService *userService.Service
}

// NewHandler 创建用户处理器
func NewHandler(userSvc *userService.Service) *Handler {
	return &Handler{userService: userSvc}
}

// GetProfile 获取用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := handler.ParseParamID(c, "user_id", "user")
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, profile)
}

// UpdateProfile 部分更新用户资料，成功返回 true
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := handler.ParseParamID(c, "user_id", "user")
	if !ok {
		return
	}

	var req userService.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		response.FromError(c, err)
		return
	}

	response.True(c)
}
