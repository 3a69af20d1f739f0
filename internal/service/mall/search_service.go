package mall

import (
	"context"

	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/common/metrics"
	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// 搜索字段
const (
	SearchFieldName        = "name"
	SearchFieldCategory    = "category"
	SearchFieldDescription = "description"
)

// SearchService 商品搜索服务
type SearchService struct {
	productRepo *repository.ProductRepository
}

// NewSearchService 创建商品搜索服务
func NewSearchService(productRepo *repository.ProductRepository) *SearchService {
	return &SearchService{productRepo: productRepo}
}

// SearchRequest 搜索请求
type SearchRequest struct {
	Query string `json:"query"`
	Field string `json:"field" binding:"required"`
}

// Search 按字段搜索商品，子串匹配、大小写不敏感
// 未知字段返回空列表而非错误
func (s *SearchService) Search(ctx context.Context, req *SearchRequest) ([]*ProductInfo, error) {
	var (
		products []*models.Product
		err      error
	)

	switch req.Field {
	case SearchFieldName:
		products, err = s.productRepo.SearchByName(ctx, req.Query)
	case SearchFieldCategory:
		products, err = s.productRepo.SearchByCategory(ctx, req.Query)
	case SearchFieldDescription:
		products, err = s.productRepo.SearchByDescription(ctx, req.Query)
	default:
		metrics.GetMetrics().RecordSearch("unknown")
		return []*ProductInfo{}, nil
	}
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	metrics.GetMetrics().RecordSearch(req.Field)

	list := make([]*ProductInfo, len(products))
	for i, p := range products {
		list[i] = toProductInfo(p)
	}
	return list, nil
}
