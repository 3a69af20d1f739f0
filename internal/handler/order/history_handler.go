// Package order 提供购买历史相关的 HTTP Handler
package order

import (
	"github.com/gin-gonic/gin"

	"github.com/zhumingyu/minishop-backend/internal/common/handler"
	"github.com/zhumingyu/minishop-backend/internal/common/response"
	orderService "github.com/zhumingyu/minishop-backend/internal/service/order"
)

// Handler 购买历史处理器
type Handler struct {
	historyService *orderService.HistoryService
}

// NewHandler 创建购买历史处理器
func NewHandler(historySvc *orderService.HistoryService) *Handler {
	return &Handler{historyService: historySvc}
}

// GetPurchaseHistory 获取买家的购买历史
func (h *Handler) GetPurchaseHistory(c *gin.Context) {
	userID, ok := handler.ParseParamID(c, "user_id", "user")
	if !ok {
		return
	}

	history, err := h.historyService.GetPurchaseHistory(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, history)
}
