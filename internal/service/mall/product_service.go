// Package mall 提供商城服务
package mall

import (
	"context"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// timeLayout API 载荷中的时间格式
const timeLayout = "2006-01-02 15:04:05"

// ProductService 商品服务
type ProductService struct {
	productRepo *repository.ProductRepository
	reviewRepo  *repository.ReviewRepository
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo *repository.ProductRepository,
	reviewRepo *repository.ReviewRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// ProductInfo 商品信息
type ProductInfo struct {
	ProductID          int64   `json:"product_id"`
	StoreID            int64   `json:"store_id"`
	ProductName        string  `json:"product_name"`
	ProductDescription *string `json:"product_description"`
	Price              float64 `json:"price"`
	Stock              int     `json:"stock"`
	CreatedAt          string  `json:"created_at"`
	Status             string  `json:"status"`
}

// ReviewInfo 评价信息
type ReviewInfo struct {
	ReviewID    int64   `json:"review_id"`
	UserID      int64   `json:"user_id"`
	ProductID   int64   `json:"product_id"`
	CommentTime string  `json:"comment_time"`
	Rating      int     `json:"rating"`
	Comment     *string `json:"comment"`
	Reply       *string `json:"reply"`
	ReplyTime   *string `json:"reply_time"`
}

// ProductDetail 商品详情，含全部评价和卖家用户 ID
type ProductDetail struct {
	Product  *ProductInfo  `json:"product"`
	Reviews  []*ReviewInfo `json:"reviews"`
	SellerID int64         `json:"seller_id"`
}

// GetDetail 获取商品详情
func (s *ProductService) GetDetail(ctx context.Context, productID int64) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	reviews, err := s.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	sellerID, err := s.productRepo.GetSellerID(ctx, productID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	list := make([]*ReviewInfo, len(reviews))
	for i, r := range reviews {
		list[i] = toReviewInfo(r)
	}

	return &ProductDetail{
		Product:  toProductInfo(product),
		Reviews:  list,
		SellerID: sellerID,
	}, nil
}

// toProductInfo 转换为商品信息
func toProductInfo(p *models.Product) *ProductInfo {
	return &ProductInfo{
		ProductID:          p.ID,
		StoreID:            p.StoreID,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		Price:              p.Price,
		Stock:              p.Stock,
		CreatedAt:          p.CreatedAt.Format(timeLayout),
		Status:             p.Status,
	}
}

// toReviewInfo 转换为评价信息
func toReviewInfo(r *models.Review) *ReviewInfo {
	info := &ReviewInfo{
		ReviewID:    r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		CommentTime: r.CommentTime.Format(timeLayout),
		Rating:      r.Rating,
		Comment:     r.Comment,
		Reply:       r.Reply,
	}
	if r.ReplyTime != nil {
		t := r.ReplyTime.Format(timeLayout)
		info.ReplyTime = &t
	}
	return info
}
