// Package repository 订单仓储单元测试
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zhumingyu/minishop-backend/internal/models"
)

// setupOrderTestDB 创建订单测试数据库并准备买家、店铺和商品
func setupOrderTestDB(t *testing.T) (*gorm.DB, *models.User, []*models.Product) {
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
	)
	require.NoError(t, err)

	buyer := &models.User{
		Username:     "buyer",
		PasswordHash: "hash-buyer",
		UserType:     models.UserTypeCustomer,
	}
	require.NoError(t, db.Create(buyer).Error)

	owner := &models.User{
		Username:     "seller",
		PasswordHash: "hash-seller",
		UserType:     models.UserTypeMerchant,
	}
	require.NoError(t, db.Create(owner).Error)

	store := &models.Store{
		StoreName:   "数码小店",
		OwnerID:     owner.ID,
		StoreStatus: models.StoreStatusActive,
	}
	require.NoError(t, db.Create(store).Error)

	products := []*models.Product{
		{StoreID: store.ID, ProductName: "无线鼠标", Price: 99.90, Stock: 10, Status: models.ProductStatusActive},
		{StoreID: store.ID, ProductName: "机械键盘", Price: 299.00, Stock: 5, Status: models.ProductStatusActive},
	}
	for _, p := range products {
		require.NoError(t, db.Create(p).Error)
	}

	return db, buyer, products
}

func TestOrderRepository_Create(t *testing.T) {
	db, buyer, products := setupOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &models.Order{
		BuyerID:     buyer.ID,
		OrderStatus: models.OrderStatusPending,
		TotalAmount: 99.90,
	}
	err := repo.Create(ctx, order)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)

	item := &models.OrderItem{
		OrderID:         order.ID,
		ProductID:       products[0].ID,
		Quantity:        1,
		PriceAtPurchase: 99.90,
	}
	err = repo.CreateItem(ctx, item)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, found.BuyerID)
}

func TestOrderRepository_ListPurchaseRows(t *testing.T) {
	db, buyer, products := setupOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	// 第一个订单含两件商品，第二个订单含一件
	order1 := &models.Order{BuyerID: buyer.ID, OrderStatus: models.OrderStatusCompleted, TotalAmount: 398.90}
	require.NoError(t, db.Create(order1).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order1.ID, ProductID: products[0].ID, Quantity: 1, PriceAtPurchase: 99.90}).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order1.ID, ProductID: products[1].ID, Quantity: 1, PriceAtPurchase: 299.00}).Error)

	order2 := &models.Order{BuyerID: buyer.ID, OrderStatus: models.OrderStatusPending, TotalAmount: 199.80}
	require.NoError(t, db.Create(order2).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order2.ID, ProductID: products[0].ID, Quantity: 2, PriceAtPurchase: 99.90}).Error)

	t.Run("每个订单明细一行", func(t *testing.T) {
		rows, err := repo.ListPurchaseRows(ctx, buyer.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, order1.ID, rows[0].OrderID)
		assert.Equal(t, "无线鼠标", rows[0].ProductName)
		assert.Equal(t, 1, rows[0].Quantity)
		assert.Equal(t, 99.90, rows[0].PriceAtPurchase)

		assert.Equal(t, order1.ID, rows[1].OrderID)
		assert.Equal(t, "机械键盘", rows[1].ProductName)

		assert.Equal(t, order2.ID, rows[2].OrderID)
		assert.Equal(t, 2, rows[2].Quantity)
		assert.Equal(t, models.OrderStatusPending, rows[2].OrderStatus)
	})

	t.Run("其他买家不受影响", func(t *testing.T) {
		rows, err := repo.ListPurchaseRows(ctx, 99999)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
