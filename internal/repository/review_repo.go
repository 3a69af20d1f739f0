package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/models"
)

// ReviewRepository 评价仓储
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓储
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create 创建评价
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// GetByID 根据 ID 获取评价
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByProductID 获取商品的全部评价
func (r *ReviewRepository) ListByProductID(ctx context.Context, productID int64) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("review_id").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Delete 删除评价，目标不存在时返回 gorm.ErrRecordNotFound
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateReply 写入商家回复并记录回复时间
func (r *ReviewRepository) UpdateReply(ctx context.Context, id int64, reply string, replyTime time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("review_id = ?", id).
		Updates(map[string]interface{}{
			"reply":      reply,
			"reply_time": replyTime,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearReply 清空商家回复和回复时间
func (r *ReviewRepository) ClearReply(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("review_id = ?", id).
		Updates(map[string]interface{}{
			"reply":      nil,
			"reply_time": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
