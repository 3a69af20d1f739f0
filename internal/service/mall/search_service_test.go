// Package mall 商品搜索服务单元测试
package mall

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

func TestSearchService_Search(t *testing.T) {
	db, store := setupMallTestDB(t)
	svc := NewSearchService(repository.NewProductRepository(db))
	ctx := context.Background()

	mouse := createMallProduct(t, db, store.ID, "Wireless Mouse", "2.4G wireless connection")
	createMallProduct(t, db, store.ID, "Mechanical Keyboard", "blue switches")

	electronics := &models.Category{CategoryName: "Electronics"}
	require.NoError(t, db.Create(electronics).Error)
	require.NoError(t, db.Create(&models.ProductTag{ProductID: mouse.ID, CategoryID: electronics.ID}).Error)

	t.Run("按名称搜索", func(t *testing.T) {
		products, err := svc.Search(ctx, &SearchRequest{Query: "mouse", Field: SearchFieldName})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Wireless Mouse", products[0].ProductName)
	})

	t.Run("按描述搜索", func(t *testing.T) {
		products, err := svc.Search(ctx, &SearchRequest{Query: "Switches", Field: SearchFieldDescription})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Mechanical Keyboard", products[0].ProductName)
	})

	t.Run("按分类搜索", func(t *testing.T) {
		products, err := svc.Search(ctx, &SearchRequest{Query: "electronics", Field: SearchFieldCategory})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, mouse.ID, products[0].ProductID)
	})

	t.Run("空查询返回全部", func(t *testing.T) {
		products, err := svc.Search(ctx, &SearchRequest{Query: "", Field: SearchFieldName})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("未知字段返回空列表而非错误", func(t *testing.T) {
		products, err := svc.Search(ctx, &SearchRequest{Query: "mouse", Field: "price"})
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}
