package mall

import (
	"github.com/gin-gonic/gin"

	"github.com/zhumingyu/minishop-backend/internal/common/handler"
	"github.com/zhumingyu/minishop-backend/internal/common/response"
	mallService "github.com/zhumingyu/minishop-backend/internal/service/mall"
)

// ReviewHandler 评价处理器
type ReviewHandler struct {
	reviewService *mallService.ReviewService
}

// NewReviewHandler 创建评价处理器
func NewReviewHandler(reviewSvc *mallService.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewSvc}
}

// AddReview 创建评价，成功返回 true
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req mallService.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Failed to add review")
		return
	}

	if err := h.reviewService.AddReview(c.Request.Context(), &req); err != nil {
		response.FromError(c, err)
		return
	}

	response.True(c)
}

// DeleteReview 删除评价，成功返回 true
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := handler.ParseParamID(c, "review_id", "review")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID); err != nil {
		response.FromError(c, err)
		return
	}

	response.True(c)
}

// AddReply 写入商家回复，成功返回 true
func (h *ReviewHandler) AddReply(c *gin.Context) {
	reviewID, ok := handler.ParseParamID(c, "review_id", "review")
	if !ok {
		return
	}

	var req mallService.AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Failed to add reply")
		return
	}

	if err := h.reviewService.AddReply(c.Request.Context(), reviewID, &req); err != nil {
		response.FromError(c, err)
		return
	}

	response.True(c)
}

// DeleteReply 清空商家回复，成功返回 true
func (h *ReviewHandler) DeleteReply(c *gin.Context) {
	reviewID, ok := handler.ParseParamID(c, "review_id", "review")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReply(c.Request.Context(), reviewID); err != nil {
		response.FromError(c, err)
		return
	}

	response.True(c)
}
