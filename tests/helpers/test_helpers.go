// Package helpers 提供测试辅助工具
package helpers

import (
	"fmt"
	"math/rand"

	"github.com/zhumingyu/minishop-backend/internal/common/crypto"
	"github.com/zhumingyu/minishop-backend/internal/models"
)

// RandomString 生成随机字符串
func RandomString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandomPhone 生成随机手机号
func RandomPhone() string {
	return fmt.Sprintf("138%08d", rand.Intn(100000000))
}

// StrPtr 字符串指针
func StrPtr(s string) *string {
	return &s
}

// NewTestCustomer 创建测试消费者，密码为明文 password 的 SHA-256
func NewTestCustomer(username, password string) *models.User {
	email := username + "@example.com"
	phone := RandomPhone()
	return &models.User{
		Username:     username,
		PasswordHash: crypto.HashPassword(password),
		Email:        &email,
		PhoneNumber:  &phone,
		UserType:     models.UserTypeCustomer,
	}
}

// NewTestMerchant 创建测试商家
func NewTestMerchant(username, password string) *models.User {
	user := NewTestCustomer(username, password)
	user.UserType = models.UserTypeMerchant
	return user
}

// NewTestStore 创建测试店铺
func NewTestStore(ownerID int64, name string) *models.Store {
	return &models.Store{
		StoreName:   name,
		OwnerID:     ownerID,
		StoreStatus: models.StoreStatusActive,
	}
}

// NewTestProduct 创建测试商品
func NewTestProduct(storeID int64, name, description string, price float64) *models.Product {
	return &models.Product{
		StoreID:            storeID,
		ProductName:        name,
		ProductDescription: StrPtr(description),
		Price:              price,
		Stock:              100,
		Status:             models.ProductStatusActive,
	}
}
