package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/common/crypto"
	"github.com/zhumingyu/minishop-backend/internal/models"
)

// Seed 写入演示数据，仅在用户表为空时执行
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Username: "小明", PasswordHash: crypto.HashPassword("123456"), UserType: models.UserTypeMerchant},
			{Username: "小红", PasswordHash: crypto.HashPassword("234567"), UserType: models.UserTypeMerchant},
			{Username: "小刚", PasswordHash: crypto.HashPassword("345678"), UserType: models.UserTypeMerchant},
			{Username: "小李", PasswordHash: crypto.HashPassword("456789"), UserType: models.UserTypeMerchant},
			{Username: "小华", PasswordHash: crypto.HashPassword("567890"), UserType: models.UserTypeMerchant},
			{Username: "Jack", PasswordHash: crypto.HashPassword("678901"), UserType: models.UserTypeCustomer},
			{Username: "Peter", PasswordHash: crypto.HashPassword("789012"), UserType: models.UserTypeCustomer},
			{Username: "Jim", PasswordHash: crypto.HashPassword("789012"), UserType: models.UserTypeCustomer},
			{Username: "Mick", PasswordHash: crypto.HashPassword("890123"), UserType: models.UserTypeCustomer},
			{Username: "Sarra", PasswordHash: crypto.HashPassword("901234"), UserType: models.UserTypeCustomer},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		stores := []models.Store{
			{StoreName: "亚狮龙旗舰店", OwnerID: 1, StoreDescription: strPtr("羽毛球物品"), StoreStatus: models.StoreStatusActive},
			{StoreName: "华为旗舰店", OwnerID: 1, StoreDescription: strPtr("盗版华为手机专卖店"), StoreStatus: models.StoreStatusClosed},
			{StoreName: "天天果园", OwnerID: 2, StoreDescription: strPtr("果蔬生鲜超市"), StoreStatus: models.StoreStatusActive},
			{StoreName: "小米旗舰店", OwnerID: 3, StoreDescription: strPtr("小米手机专卖店"), StoreStatus: models.StoreStatusActive},
			{StoreName: "五金", OwnerID: 3, StoreDescription: strPtr("五金店"), StoreStatus: models.StoreStatusActive},
			{StoreName: "新居助手", OwnerID: 3, StoreDescription: strPtr("家用电器"), StoreStatus: models.StoreStatusActive},
			{StoreName: "及时雨药房", OwnerID: 4, StoreDescription: strPtr("药品零售店"), StoreStatus: models.StoreStatusActive},
			{StoreName: "世界衣柜", OwnerID: 5, StoreDescription: strPtr("衣物批发市场"), StoreStatus: models.StoreStatusActive},
			{StoreName: "乐活时尚", OwnerID: 5, StoreDescription: strPtr("时尚品牌连锁店"), StoreStatus: models.StoreStatusClosed},
		}
		if err := tx.Create(&stores).Error; err != nil {
			return err
		}

		products := []models.Product{
			{StoreID: 1, ProductName: "羽毛球拍", ProductDescription: strPtr("天斧七代"), Price: 700, Stock: 10, Status: models.ProductStatusActive},
			{StoreID: 1, ProductName: "羽毛球鞋", ProductDescription: strPtr("尤尼克斯高仿"), Price: 500, Stock: 20, Status: models.ProductStatusActive},
			{StoreID: 1, ProductName: "桶装羽毛球", ProductDescription: strPtr("76速12只装"), Price: 100, Stock: 10, Status: models.ProductStatusActive},
			{StoreID: 3, ProductName: "西瓜", ProductDescription: strPtr("新疆无籽西瓜"), Price: 20, Stock: 30, Status: models.ProductStatusActive},
			{StoreID: 3, ProductName: "红苹果", ProductDescription: strPtr("富士山红苹果"), Price: 5, Stock: 30, Status: models.ProductStatusActive},
			{StoreID: 4, ProductName: "小米15Ultra", ProductDescription: strPtr("小米15Ultra 128G"), Price: 7000, Stock: 100, Status: models.ProductStatusActive},
			{StoreID: 5, ProductName: "公牛排插", ProductDescription: strPtr("8孔公牛排插"), Price: 20, Stock: 1000, Status: models.ProductStatusActive},
			{StoreID: 6, ProductName: "洗衣机", ProductDescription: strPtr("全自动洗衣机"), Price: 450, Stock: 200, Status: models.ProductStatusActive},
			{StoreID: 7, ProductName: "肠炎宁", ProductDescription: strPtr("消炎止泻"), Price: 50, Stock: 100, Status: models.ProductStatusActive},
			{StoreID: 7, ProductName: "布洛芬", ProductDescription: strPtr("退烧止痛"), Price: 50, Stock: 100, Status: models.ProductStatusActive},
			{StoreID: 8, ProductName: "男士短袖T恤", ProductDescription: strPtr("欧美男士短袖T恤"), Price: 150, Stock: 100, Status: models.ProductStatusActive},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		orders := []models.Order{
			{BuyerID: 6, PayerID: int64Ptr(6), PaymentMethod: strPtr(models.PaymentMethodWechat), PaymentStatus: strPtr(models.PaymentStatusSuccess), PaymentTime: timePtr("2025-04-04 15:30:00"), OrderStatus: models.OrderStatusPaid, TotalAmount: 100, CreatedAt: mustTime("2025-04-04 15:28:00")},
			{BuyerID: 7, PayerID: int64Ptr(7), PaymentMethod: strPtr(models.PaymentMethodAlipay), PaymentStatus: strPtr(models.PaymentStatusSuccess), PaymentTime: timePtr("2025-04-01 02:00:00"), OrderStatus: models.OrderStatusCompleted, TotalAmount: 6998, CreatedAt: mustTime("2025-04-01 01:55:43")},
			{BuyerID: 8, PayerID: int64Ptr(8), PaymentMethod: strPtr(models.PaymentMethodCreditCard), PaymentStatus: strPtr(models.PaymentStatusFailed), PaymentTime: timePtr("2025-04-02 19:33:00"), OrderStatus: models.OrderStatusPending, TotalAmount: 57.8, CreatedAt: mustTime("2025-04-02 18:00:00")},
			{BuyerID: 9, PayerID: int64Ptr(10), PaymentMethod: strPtr(models.PaymentMethodWechat), PaymentStatus: strPtr(models.PaymentStatusSuccess), PaymentTime: timePtr("2025-04-05 20:32:00"), OrderStatus: models.OrderStatusShipped, TotalAmount: 100, CreatedAt: mustTime("2025-04-05 20:19:50")},
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}

		items := []models.OrderItem{
			{OrderID: 1, ProductID: 1, Quantity: 1, PriceAtPurchase: 100},
			{OrderID: 2, ProductID: 6, Quantity: 1, PriceAtPurchase: 7000},
			{OrderID: 3, ProductID: 4, Quantity: 3, PriceAtPurchase: 20},
			{OrderID: 4, ProductID: 11, Quantity: 1, PriceAtPurchase: 150},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		reviews := []models.Review{
			{UserID: 7, ProductID: 6, CommentTime: mustTime("2025-04-03 12:00:00"), Rating: 4, Comment: strPtr("雷军 yyds!")},
			{UserID: 6, ProductID: 1, CommentTime: mustTime("2025-04-05 17:55:12"), Rating: 1, Comment: strPtr("发货太慢，客服态度也很差"), Reply: strPtr("很抱歉，我们会加快发货速度的，请耐心等待"), ReplyTime: timePtr("2025-04-05 18:00:00")},
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return err
		}

		categories := []models.Category{
			{CategoryName: "电子产品"},
			{CategoryName: "休闲运动"},
			{CategoryName: "食品"},
			{CategoryName: "服装"},
			{CategoryName: "医药"},
			{CategoryName: "生活家居"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		tags := []models.ProductTag{
			{ProductID: 1, CategoryID: 2},
			{ProductID: 2, CategoryID: 2},
			{ProductID: 3, CategoryID: 2},
			{ProductID: 4, CategoryID: 3},
			{ProductID: 5, CategoryID: 3},
			{ProductID: 6, CategoryID: 1},
			{ProductID: 7, CategoryID: 6},
			{ProductID: 8, CategoryID: 6},
			{ProductID: 9, CategoryID: 5},
			{ProductID: 10, CategoryID: 5},
			{ProductID: 11, CategoryID: 4},
		}
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}

		shippings := []models.Shipping{
			{OrderID: 1, TrackingNumber: "1234567890", Carrier: "顺丰快递", ShippingStatus: models.ShippingStatusPending, EstimatedArrival: timePtr("2025-04-05 10:30:00"), RecipientName: "I am not Jack", RecipientPhone: "13800138000", ShippingAddress: "北京市海淀区北京大学"},
			{OrderID: 2, TrackingNumber: "2345678901", Carrier: "圆通快递", ShippingStatus: models.ShippingStatusDelivered, EstimatedArrival: timePtr("2025-04-03 10:00:00"), ActualArrival: timePtr("2025-04-03 09:33:00"), RecipientName: "Jimmy is on fire", RecipientPhone: "15800138000", ShippingAddress: "北京市海淀区清华大学"},
			{OrderID: 4, TrackingNumber: "3456789012", Carrier: "京东快递", ShippingStatus: models.ShippingStatusInTransit, EstimatedArrival: timePtr("2025-04-06 18:30:00"), RecipientName: "Michal", RecipientPhone: "13700137000", ShippingAddress: "北京市海淀区中国科学院大学"},
		}
		if err := tx.Create(&shippings).Error; err != nil {
			return err
		}

		tracks := []models.ShippingTrack{
			{ShippingID: 1, TrackID: 1, Status: models.TrackStatusSorting, Location: "天津市", Timestamp: mustTime("2025-04-04 15:30:00")},
			{ShippingID: 2, TrackID: 1, Status: models.TrackStatusSorting, Location: "上海市", Timestamp: mustTime("2025-04-01 02:30:00")},
			{ShippingID: 2, TrackID: 2, Status: models.TrackStatusPickedUp, Location: "上海市", Timestamp: mustTime("2025-04-01 02:45:00")},
			{ShippingID: 2, TrackID: 3, Status: models.TrackStatusInTransit, Location: "河南省", Timestamp: mustTime("2025-04-02 10:30:00")},
			{ShippingID: 2, TrackID: 4, Status: models.TrackStatusDelivered, Location: "北京市", Timestamp: mustTime("2025-04-03 09:33:00")},
			{ShippingID: 3, TrackID: 1, Status: models.TrackStatusSorting, Location: "广东省", Timestamp: mustTime("2025-04-05 20:32:00")},
			{ShippingID: 3, TrackID: 2, Status: models.TrackStatusPickedUp, Location: "广东省", Timestamp: mustTime("2025-04-05 20:37:00")},
			{ShippingID: 3, TrackID: 3, Status: models.TrackStatusInTransit, Location: "湖北省", Timestamp: mustTime("2025-04-06 10:30:00")},
		}
		return tx.Create(&tracks).Error
	})
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}

func mustTime(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(s string) *time.Time {
	t := mustTime(s)
	return &t
}
