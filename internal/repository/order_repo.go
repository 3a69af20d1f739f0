package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/models"
)

// PurchaseRow 购买历史的扁平行，一行对应一个 (订单, 明细, 商品) 三元组
type PurchaseRow struct {
	OrderID         int64     `gorm:"column:order_id"`
	OrderStatus     string    `gorm:"column:order_status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	ProductName     string    `gorm:"column:product_name"`
	ProductID       int64     `gorm:"column:product_id"`
	Quantity        int       `gorm:"column:quantity"`
	PriceAtPurchase float64   `gorm:"column:price_at_purchase"`
}

// OrderRepository 订单仓储
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create 创建订单
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateItem 创建订单明细
func (r *OrderRepository) CreateItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID 根据 ID 获取订单
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListPurchaseRows 获取买家的购买历史扁平行
// 订单连接明细再连接商品，按 order_id 排序保证输出稳定
func (r *OrderRepository) ListPurchaseRows(ctx context.Context, buyerID int64) ([]*PurchaseRow, error) {
	var rows []*PurchaseRow
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select(`"Order_Table".order_id, "Order_Table".order_status, "Order_Table".created_at,
			"Product".product_name, "Product".product_id,
			"Order_Item".quantity, "Order_Item".price_at_purchase`).
		Joins(`JOIN "Order_Item" ON "Order_Table".order_id = "Order_Item".order_id`).
		Joins(`JOIN "Product" ON "Order_Item".product_id = "Product".product_id`).
		Where(`"Order_Table".buyer_id = ?`, buyerID).
		Order(`"Order_Table".order_id, "Product".product_id`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
