// Package order 购买历史服务单元测试
package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// setupTestService 创建测试用购买历史服务
func setupTestService(t *testing.T) (*HistoryService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Shipping{},
		&models.ShippingTrack{},
	)
	require.NoError(t, err)

	svc := NewHistoryService(
		repository.NewOrderRepository(db),
		repository.NewShippingRepository(db),
	)
	return svc, db
}

func TestHistoryService_GetPurchaseHistory(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	buyer := &models.User{Username: "buyer", PasswordHash: "hash-buyer", UserType: models.UserTypeCustomer}
	require.NoError(t, db.Create(buyer).Error)
	owner := &models.User{Username: "seller", PasswordHash: "hash-seller", UserType: models.UserTypeMerchant}
	require.NoError(t, db.Create(owner).Error)
	store := &models.Store{StoreName: "数码小店", OwnerID: owner.ID, StoreStatus: models.StoreStatusActive}
	require.NoError(t, db.Create(store).Error)

	mouse := &models.Product{StoreID: store.ID, ProductName: "无线鼠标", Price: 99.90, Stock: 10, Status: models.ProductStatusActive}
	require.NoError(t, db.Create(mouse).Error)
	keyboard := &models.Product{StoreID: store.ID, ProductName: "机械键盘", Price: 299.00, Stock: 5, Status: models.ProductStatusActive}
	require.NoError(t, db.Create(keyboard).Error)

	// 订单一：两件商品，已发货并有轨迹
	order1 := &models.Order{BuyerID: buyer.ID, OrderStatus: models.OrderStatusShipped, TotalAmount: 398.90}
	require.NoError(t, db.Create(order1).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order1.ID, ProductID: mouse.ID, Quantity: 1, PriceAtPurchase: 99.90}).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order1.ID, ProductID: keyboard.ID, Quantity: 1, PriceAtPurchase: 299.00}).Error)

	shipping := &models.Shipping{
		OrderID:         order1.ID,
		TrackingNumber:  "SF123456789",
		Carrier:         "顺丰",
		ShippingStatus:  models.ShippingStatusInTransit,
		RecipientName:   "张三",
		RecipientPhone:  "13800000000",
		ShippingAddress: "上海市浦东新区",
	}
	require.NoError(t, db.Create(shipping).Error)
	require.NoError(t, db.Create(&models.ShippingTrack{ShippingID: shipping.ID, TrackID: 1, Status: models.TrackStatusSorting, Location: "上海分拣中心"}).Error)
	require.NoError(t, db.Create(&models.ShippingTrack{ShippingID: shipping.ID, TrackID: 2, Status: models.TrackStatusInTransit, Location: "运输途中"}).Error)

	// 订单二：一件商品，未发货
	order2 := &models.Order{BuyerID: buyer.ID, OrderStatus: models.OrderStatusPending, TotalAmount: 199.80}
	require.NoError(t, db.Create(order2).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order2.ID, ProductID: mouse.ID, Quantity: 2, PriceAtPurchase: 99.90}).Error)

	t.Run("按订单明细展开并按订单聚合轨迹", func(t *testing.T) {
		history, err := svc.GetPurchaseHistory(ctx, buyer.ID)
		require.NoError(t, err)

		require.Len(t, history.Orders, 3)
		assert.Equal(t, order1.ID, history.Orders[0].OrderID)
		assert.Equal(t, "无线鼠标", history.Orders[0].ProductName)
		assert.Equal(t, "机械键盘", history.Orders[1].ProductName)
		assert.Equal(t, order2.ID, history.Orders[2].OrderID)
		assert.Equal(t, 2, history.Orders[2].Quantity)
		assert.NotEmpty(t, history.Orders[0].CreatedAt)

		// 轨迹以订单 ID 为键，每条轨迹事件一对
		require.Contains(t, history.Trackings, order1.ID)
		pairs := history.Trackings[order1.ID]
		require.Len(t, pairs, 2)
		assert.Equal(t, "SF123456789", pairs[0].Shipping.TrackingNumber)
		assert.Equal(t, models.TrackStatusSorting, pairs[0].Track.Status)
		assert.Equal(t, models.TrackStatusInTransit, pairs[1].Track.Status)

		// 未发货的订单轨迹为空列表
		require.Contains(t, history.Trackings, order2.ID)
		assert.Empty(t, history.Trackings[order2.ID])
	})

	t.Run("无购买记录返回 404 错误", func(t *testing.T) {
		_, err := svc.GetPurchaseHistory(ctx, 99999)
		assert.ErrorIs(t, err, errors.ErrNoPurchases)
	})
}
