package models

import (
	"time"
)

// Shipping 物流单，一个订单通常对应一条（未做唯一约束）
type Shipping struct {
	ID               int64      `gorm:"column:shipping_id;primaryKey;autoIncrement" json:"shipping_id"`
	OrderID          int64      `gorm:"column:order_id;not null;index" json:"order_id"`
	TrackingNumber   string     `gorm:"column:tracking_number;type:varchar(50);uniqueIndex;not null" json:"tracking_number"`
	Carrier          string     `gorm:"column:carrier;type:varchar(50);not null" json:"carrier"`
	ShippingStatus   string     `gorm:"column:shipping_status;type:text;not null;default:pending;check:shipping_status IN ('pending','shipped','in_transit','delivered')" json:"shipping_status"`
	EstimatedArrival *time.Time `gorm:"column:estimated_arrival" json:"estimated_arrival,omitempty"`
	ActualArrival    *time.Time `gorm:"column:actual_arrival" json:"actual_arrival,omitempty"`
	RecipientName    string     `gorm:"column:recipient_name;type:varchar(50);not null" json:"recipient_name"`
	RecipientPhone   string     `gorm:"column:recipient_phone;type:varchar(20);not null" json:"recipient_phone"`
	ShippingAddress  string     `gorm:"column:shipping_address;type:text;not null" json:"shipping_address"`

	// 关联
	Order  *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Tracks []ShippingTrack `gorm:"foreignKey:ShippingID" json:"tracks,omitempty"`
}

// TableName 表名
func (Shipping) TableName() string {
	return "Shipping"
}

// ShippingStatus 物流状态
const (
	ShippingStatusPending   = "pending"
	ShippingStatusShipped   = "shipped"
	ShippingStatusInTransit = "in_transit"
	ShippingStatusDelivered = "delivered"
)

// ShippingTrack 物流轨迹事件，按 (shipping_id, track_id) 追加写入
type ShippingTrack struct {
	ShippingID int64     `gorm:"column:shipping_id;primaryKey" json:"shipping_id"`
	TrackID    int64     `gorm:"column:track_id;primaryKey" json:"track_id"`
	Status     string    `gorm:"column:status;type:text;not null;check:status IN ('sorting','picked_up','in_transit','delivered')" json:"status"`
	Location   string    `gorm:"column:location;type:text;not null" json:"location"`
	Timestamp  time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

// TableName 表名
func (ShippingTrack) TableName() string {
	return "Shipping_Track"
}

// ShippingTrackStatus 轨迹状态
const (
	TrackStatusSorting   = "sorting"
	TrackStatusPickedUp  = "picked_up"
	TrackStatusInTransit = "in_transit"
	TrackStatusDelivered = "delivered"
)
