package models

import (
	"time"
)

// Product 商品模型
type Product struct {
	ID                 int64     `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	StoreID            int64     `gorm:"column:store_id;not null;index" json:"store_id"`
	ProductName        string    `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	ProductDescription *string   `gorm:"column:product_description;type:text" json:"product_description,omitempty"`
	Price              float64   `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Stock              int       `gorm:"column:stock;not null" json:"stock"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Status             string    `gorm:"column:status;type:text;not null;default:active;check:status IN ('active','inactive')" json:"status"`

	// 关联
	Store   *Store   `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Reviews []Review `gorm:"foreignKey:ProductID" json:"reviews,omitempty"`
}

// TableName 表名
func (Product) TableName() string {
	return "Product"
}

// ProductStatus 商品状态
const (
	ProductStatusActive   = "active"   // 在售
	ProductStatusInactive = "inactive" // 下架
)

// Category 商品分类（parent_category_id 自引用构成分类树）
type Category struct {
	ID               int64   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName     string  `gorm:"column:category_name;type:varchar(100);not null" json:"category_name"`
	ParentCategoryID *int64  `gorm:"column:parent_category_id;index" json:"parent_category_id,omitempty"`

	// 关联
	Parent   *Category  `gorm:"foreignKey:ParentCategoryID" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentCategoryID" json:"children,omitempty"`
}

// TableName 表名
func (Category) TableName() string {
	return "Category"
}

// ProductTag 商品-分类多对多关联，复合主键
type ProductTag struct {
	ProductID  int64 `gorm:"column:product_id;primaryKey" json:"product_id"`
	CategoryID int64 `gorm:"column:category_id;primaryKey" json:"category_id"`
}

// TableName 表名
func (ProductTag) TableName() string {
	return "Product_Tag"
}

// Review 商品评价，reply 由商家填写
type Review struct {
	ID          int64      `gorm:"column:review_id;primaryKey;autoIncrement" json:"review_id"`
	UserID      int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID   int64      `gorm:"column:product_id;not null;index" json:"product_id"`
	CommentTime time.Time  `gorm:"column:comment_time;autoCreateTime" json:"comment_time"`
	Rating      int        `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     *string    `gorm:"column:comment;type:text" json:"comment,omitempty"`
	Reply       *string    `gorm:"column:reply;type:text" json:"reply,omitempty"`
	ReplyTime   *time.Time `gorm:"column:reply_time" json:"reply_time,omitempty"`

	// 关联
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 表名
func (Review) TableName() string {
	return "Review"
}
