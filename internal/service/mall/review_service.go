package mall

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/common/metrics"
	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo *repository.ReviewRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// AddReviewRequest 创建评价请求
type AddReviewRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	ProductID int64  `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// AddReplyRequest 商家回复请求
type AddReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// AddReview 创建评价，评价时间由服务端写入，回复字段留空
func (s *ReviewService) AddReview(ctx context.Context, req *AddReviewRequest) error {
	var comment *string
	if req.Comment != "" {
		comment = &req.Comment
	}

	review := &models.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return errors.ErrReviewRejected.WithError(err)
	}

	metrics.GetMetrics().RecordReview("add")
	return nil
}

// DeleteReview 删除评价
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrReviewNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	metrics.GetMetrics().RecordReview("delete")
	return nil
}

// AddReply 写入商家回复，目标评价不存在时按写入失败处理
func (s *ReviewService) AddReply(ctx context.Context, reviewID int64, req *AddReplyRequest) error {
	if err := s.reviewRepo.UpdateReply(ctx, reviewID, req.Reply, time.Now()); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrReplyRejected
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	metrics.GetMetrics().RecordReview("reply")
	return nil
}

// DeleteReply 清空商家回复
func (s *ReviewService) DeleteReply(ctx context.Context, reviewID int64) error {
	if err := s.reviewRepo.ClearReply(ctx, reviewID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrReviewNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	metrics.GetMetrics().RecordReview("unreply")
	return nil
}
