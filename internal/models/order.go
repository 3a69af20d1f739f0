package models

import (
	"time"
)

// Order 订单模型，表名沿用 Order_Table（Order 是 SQL 保留字）
type Order struct {
	ID            int64      `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	BuyerID       int64      `gorm:"column:buyer_id;not null;index" json:"buyer_id"`
	PayerID       *int64     `gorm:"column:payer_id" json:"payer_id,omitempty"`
	PaymentMethod *string    `gorm:"column:payment_method;type:text;check:payment_method IS NULL OR payment_method IN ('credit_card','wechat','alipay')" json:"payment_method,omitempty"`
	PaymentStatus *string    `gorm:"column:payment_status;type:text;check:payment_status IS NULL OR payment_status IN ('pending','success','failed')" json:"payment_status,omitempty"`
	PaymentTime   *time.Time `gorm:"column:payment_time" json:"payment_time,omitempty"`
	OrderStatus   string     `gorm:"column:order_status;type:text;not null;default:pending;check:order_status IN ('pending','paid','shipped','completed','canceled')" json:"order_status"`
	TotalAmount   float64    `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// 关联
	Buyer *User       `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName 表名
func (Order) TableName() string {
	return "Order_Table"
}

// OrderStatus 订单状态
const (
	OrderStatusPending   = "pending"   // 待支付
	OrderStatusPaid      = "paid"      // 已支付
	OrderStatusShipped   = "shipped"   // 已发货
	OrderStatusCompleted = "completed" // 已完成
	OrderStatusCanceled  = "canceled"  // 已取消
)

// PaymentMethod 支付方式
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodWechat     = "wechat"
	PaymentMethodAlipay     = "alipay"
)

// PaymentStatus 支付状态
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// OrderItem 订单明细，price_at_purchase 为下单时的价格快照
type OrderItem struct {
	OrderID         int64   `gorm:"column:order_id;primaryKey" json:"order_id"`
	ProductID       int64   `gorm:"column:product_id;primaryKey" json:"product_id"`
	Quantity        int     `gorm:"column:quantity;not null;check:quantity >= 1" json:"quantity"`
	PriceAtPurchase float64 `gorm:"column:price_at_purchase;type:decimal(10,2);not null" json:"price_at_purchase"`

	// 关联
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 表名
func (OrderItem) TableName() string {
	return "Order_Item"
}
