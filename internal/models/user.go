// Package models 定义数据模型
package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID               int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username         string    `gorm:"column:username;type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash     string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Email            *string   `gorm:"column:email;type:varchar(100);uniqueIndex" json:"email,omitempty"`
	PhoneNumber      *string   `gorm:"column:phone_number;type:varchar(20);uniqueIndex" json:"phone_number,omitempty"`
	Address          *string   `gorm:"column:address;type:text" json:"address,omitempty"`
	RegistrationDate time.Time `gorm:"column:registration_date;autoCreateTime" json:"registration_date"`
	UserType         string    `gorm:"column:user_type;type:text;not null;check:user_type IN ('customer','merchant')" json:"user_type"`

	// 关联
	Stores []Store `gorm:"foreignKey:OwnerID" json:"stores,omitempty"`
}

// TableName 表名
func (User) TableName() string {
	return "User"
}

// UserType 用户类型
const (
	UserTypeCustomer = "customer" // 消费者
	UserTypeMerchant = "merchant" // 商家
)

// Store 店铺模型
type Store struct {
	ID               int64     `gorm:"column:store_id;primaryKey;autoIncrement" json:"store_id"`
	StoreName        string    `gorm:"column:store_name;type:varchar(100);not null" json:"store_name"`
	OwnerID          int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	StoreDescription *string   `gorm:"column:store_description;type:text" json:"store_description,omitempty"`
	StoreStatus      string    `gorm:"column:store_status;type:text;not null;default:active;check:store_status IN ('active','closed')" json:"store_status"`
	RegistrationDate time.Time `gorm:"column:registration_date;autoCreateTime" json:"registration_date"`

	// 关联
	Owner    *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Products []Product `gorm:"foreignKey:StoreID" json:"products,omitempty"`
}

// TableName 表名
func (Store) TableName() string {
	return "Store"
}

// StoreStatus 店铺状态
const (
	StoreStatusActive = "active" // 营业中
	StoreStatusClosed = "closed" // 已关闭
)
