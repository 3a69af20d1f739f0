package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/models"
)

// ProductRepository 商品仓储
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create 创建商品
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetByID 根据 ID 获取商品
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchByName 按商品名称模糊搜索，大小写不敏感
func (r *ProductRepository) SearchByName(ctx context.Context, query string) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(product_name) LIKE LOWER(?)", "%"+query+"%").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByDescription 按商品描述模糊搜索，大小写不敏感
func (r *ProductRepository) SearchByDescription(ctx context.Context, query string) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(product_description) LIKE LOWER(?)", "%"+query+"%").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByCategory 按分类名模糊搜索，经 Product_Tag 关联到 Category
func (r *ProductRepository) SearchByCategory(ctx context.Context, query string) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins(`JOIN "Product_Tag" ON "Product".product_id = "Product_Tag".product_id`).
		Joins(`JOIN "Category" ON "Product_Tag".category_id = "Category".category_id`).
		Where(`LOWER("Category".category_name) LIKE LOWER(?)`, "%"+query+"%").
		Distinct(`"Product".*`).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetSellerID 获取商品卖家的用户 ID，经 Store 关联到店主
func (r *ProductRepository) GetSellerID(ctx context.Context, productID int64) (int64, error) {
	var ownerIDs []int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins(`JOIN "Store" ON "Product".store_id = "Store".store_id`).
		Where(`"Product".product_id = ?`, productID).
		Pluck(`"Store".owner_id`, &ownerIDs).Error
	if err != nil {
		return 0, err
	}
	if len(ownerIDs) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ownerIDs[0], nil
}
