package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/models"
)

// ShippingRepository 物流仓储
type ShippingRepository struct {
	db *gorm.DB
}

// NewShippingRepository 创建物流仓储
func NewShippingRepository(db *gorm.DB) *ShippingRepository {
	return &ShippingRepository{db: db}
}

// Create 创建物流单
func (r *ShippingRepository) Create(ctx context.Context, shipping *models.Shipping) error {
	return r.db.WithContext(ctx).Create(shipping).Error
}

// CreateTrack 追加物流轨迹事件
func (r *ShippingRepository) CreateTrack(ctx context.Context, track *models.ShippingTrack) error {
	return r.db.WithContext(ctx).Create(track).Error
}

// ListByOrderID 获取订单的全部物流单，预加载轨迹事件
func (r *ShippingRepository) ListByOrderID(ctx context.Context, orderID int64) ([]*models.Shipping, error) {
	var shippings []*models.Shipping
	err := r.db.WithContext(ctx).
		Preload("Tracks", func(db *gorm.DB) *gorm.DB {
			return db.Order("track_id")
		}).
		Where("order_id = ?", orderID).
		Order("shipping_id").
		Find(&shippings).Error
	if err != nil {
		return nil, err
	}
	return shippings, nil
}
