// Package order 提供订单相关服务
package order

import (
	"context"

	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// timeLayout API 载荷中的时间格式
const timeLayout = "2006-01-02 15:04:05"

// HistoryService 购买历史服务
type HistoryService struct {
	orderRepo    *repository.OrderRepository
	shippingRepo *repository.ShippingRepository
}

// NewHistoryService 创建购买历史服务
func NewHistoryService(
	orderRepo *repository.OrderRepository,
	shippingRepo *repository.ShippingRepository,
) *HistoryService {
	return &HistoryService{
		orderRepo:    orderRepo,
		shippingRepo: shippingRepo,
	}
}

// OrderLine 购买历史的一行，对应一个 (订单, 明细, 商品) 三元组
type OrderLine struct {
	OrderID         int64   `json:"order_id"`
	OrderStatus     string  `json:"order_status"`
	CreatedAt       string  `json:"created_at"`
	ProductName     string  `json:"product_name"`
	ProductID       int64   `json:"product_id"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

// ShippingInfo 物流单信息
type ShippingInfo struct {
	ShippingID       int64   `json:"shipping_id"`
	OrderID          int64   `json:"order_id"`
	TrackingNumber   string  `json:"tracking_number"`
	Carrier          string  `json:"carrier"`
	ShippingStatus   string  `json:"shipping_status"`
	EstimatedArrival *string `json:"estimated_arrival"`
	ActualArrival    *string `json:"actual_arrival"`
	RecipientName    string  `json:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone"`
	ShippingAddress  string  `json:"shipping_address"`
}

// TrackEventInfo 物流轨迹事件
type TrackEventInfo struct {
	ShippingID int64  `json:"shipping_id"`
	TrackID    int64  `json:"track_id"`
	Status     string `json:"status"`
	Location   string `json:"location"`
	Timestamp  string `json:"timestamp"`
}

// TrackingPair 物流单与单条轨迹事件的组合
type TrackingPair struct {
	Shipping *ShippingInfo   `json:"shipping"`
	Track    *TrackEventInfo `json:"track"`
}

// PurchaseHistory 购买历史
// trackings 以订单 ID 为键，避免与 orders 列表位置耦合
type PurchaseHistory struct {
	Orders    []*OrderLine             `json:"orders"`
	Trackings map[int64][]*TrackingPair `json:"trackings"`
}

// GetPurchaseHistory 获取买家的购买历史
// 无任何购买记录时返回 ErrNoPurchases
func (s *HistoryService) GetPurchaseHistory(ctx context.Context, userID int64) (*PurchaseHistory, error) {
	rows, err := s.orderRepo.ListPurchaseRows(ctx, userID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if len(rows) == 0 {
		return nil, errors.ErrNoPurchases
	}

	orders := make([]*OrderLine, len(rows))
	trackings := make(map[int64][]*TrackingPair, len(rows))
	for i, row := range rows {
		orders[i] = &OrderLine{
			OrderID:         row.OrderID,
			OrderStatus:     row.OrderStatus,
			CreatedAt:       row.CreatedAt.Format(timeLayout),
			ProductName:     row.ProductName,
			ProductID:       row.ProductID,
			Quantity:        row.Quantity,
			PriceAtPurchase: row.PriceAtPurchase,
		}

		if _, done := trackings[row.OrderID]; done {
			continue
		}

		shippings, err := s.shippingRepo.ListByOrderID(ctx, row.OrderID)
		if err != nil {
			return nil, errors.ErrDatabaseError.WithError(err)
		}

		pairs := []*TrackingPair{}
		for _, sh := range shippings {
			info := toShippingInfo(sh)
			for i := range sh.Tracks {
				pairs = append(pairs, &TrackingPair{
					Shipping: info,
					Track:    toTrackEventInfo(&sh.Tracks[i]),
				})
			}
		}
		trackings[row.OrderID] = pairs
	}

	return &PurchaseHistory{Orders: orders, Trackings: trackings}, nil
}

// toShippingInfo 转换为物流单信息
func toShippingInfo(sh *models.Shipping) *ShippingInfo {
	info := &ShippingInfo{
		ShippingID:      sh.ID,
		OrderID:         sh.OrderID,
		TrackingNumber:  sh.TrackingNumber,
		Carrier:         sh.Carrier,
		ShippingStatus:  sh.ShippingStatus,
		RecipientName:   sh.RecipientName,
		RecipientPhone:  sh.RecipientPhone,
		ShippingAddress: sh.ShippingAddress,
	}
	if sh.EstimatedArrival != nil {
		t := sh.EstimatedArrival.Format(timeLayout)
		info.EstimatedArrival = &t
	}
	if sh.ActualArrival != nil {
		t := sh.ActualArrival.Format(timeLayout)
		info.ActualArrival = &t
	}
	return info
}

// toTrackEventInfo 转换为轨迹事件
func toTrackEventInfo(tr *models.ShippingTrack) *TrackEventInfo {
	return &TrackEventInfo{
		ShippingID: tr.ShippingID,
		TrackID:    tr.TrackID,
		Status:     tr.Status,
		Location:   tr.Location,
		Timestamp:  tr.Timestamp.Format(timeLayout),
	}
}
