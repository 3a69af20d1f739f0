// Package mall 提供商城相关的 HTTP Handler
package mall

import (
	"github.com/gin-gonic/gin"

	"github.com/zhumingyu/minishop-backend/internal/common/handler"
	"github.com/zhumingyu/minishop-backend/internal/common/response"
	mallService "github.com/zhumingyu/minishop-backend/internal/service/mall"
)

// ProductHandler 商品处理器
type ProductHandler struct {
	productService *mallService.ProductService
	searchService  *mallService.SearchService
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	productSvc *mallService.ProductService,
	searchSvc *mallService.SearchService,
) *ProductHandler {
	return &ProductHandler{
		productService: productSvc,
		searchService:  searchSvc,
	}
}

// Search 搜索商品，结果直接输出为数组
func (h *ProductHandler) Search(c *gin.Context) {
	var req mallService.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "query and field are required")
		return
	}

	products, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, products)
}

// GetDetail 获取商品详情，含评价列表和卖家用户 ID
func (h *ProductHandler) GetDetail(c *gin.Context) {
	productID, ok := handler.ParseParamID(c, "product_id", "product")
	if !ok {
		return
	}

	detail, err := h.productService.GetDetail(c.Request.Context(), productID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, detail)
}
