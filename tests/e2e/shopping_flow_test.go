//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zhumingyu/minishop-backend/internal/common/crypto"
	"github.com/zhumingyu/minishop-backend/internal/common/database"
	authHandler "github.com/zhumingyu/minishop-backend/internal/handler/auth"
	mallHandler "github.com/zhumingyu/minishop-backend/internal/handler/mall"
	orderHandler "github.com/zhumingyu/minishop-backend/internal/handler/order"
	userHandler "github.com/zhumingyu/minishop-backend/internal/handler/user"
	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
	authService "github.com/zhumingyu/minishop-backend/internal/service/auth"
	mallService "github.com/zhumingyu/minishop-backend/internal/service/mall"
	orderService "github.com/zhumingyu/minishop-backend/internal/service/order"
	userService "github.com/zhumingyu/minishop-backend/internal/service/user"
)

// setupShopServer 组装完整路由并灌入演示数据
func setupShopServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Product{},
		&models.Category{},
		&models.ProductTag{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.Shipping{},
		&models.ShippingTrack{},
	))
	require.NoError(t, database.Seed(db))

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	shippingRepo := repository.NewShippingRepository(db)

	authH := authHandler.NewHandler(authService.NewService(userRepo))
	userH := userHandler.NewHandler(userService.NewService(userRepo))
	productH := mallHandler.NewProductHandler(
		mallService.NewProductService(productRepo, reviewRepo),
		mallService.NewSearchService(productRepo),
	)
	reviewH := mallHandler.NewReviewHandler(mallService.NewReviewService(reviewRepo))
	historyH := orderHandler.NewHandler(orderService.NewHistoryService(orderRepo, shippingRepo))

	r.POST("/login", authH.Login)
	r.POST("/search", productH.Search)
	r.GET("/profile/:user_id", userH.GetProfile)
	r.POST("/profile/:user_id", userH.UpdateProfile)
	r.GET("/purchase/:user_id", historyH.GetPurchaseHistory)
	r.GET("/product/:product_id", productH.GetDetail)
	r.POST("/review/:review_id", reviewH.AddReview)
	r.GET("/review/:review_id", reviewH.DeleteReview)
	r.POST("/reply/:review_id", reviewH.AddReply)
	r.GET("/reply/:review_id", reviewH.DeleteReply)

	return r, db
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req, _ := http.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestE2E_ShoppingFlow 演示数据上的完整购物链路：
// 登录 → 搜索 → 查看详情 → 查看购买历史 → 评价 → 商家回复
func TestE2E_ShoppingFlow(t *testing.T) {
	router, db := setupShopServer(t)

	// 登录演示账号
	w := postJSON(router, "/login", gin.H{
		"username":      "Jack",
		"password_hash": crypto.HashPassword("678901"),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		UserID int64 `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotZero(t, login.UserID)

	// 按分类搜索商品
	w = postJSON(router, "/search", gin.H{"query": "电子", "field": "category"})
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.NotEmpty(t, products)

	productID := int64(products[0]["product_id"].(float64))

	// 查看商品详情
	w = get(router, fmt.Sprintf("/product/%d", productID))
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Product  map[string]interface{} `json:"product"`
		SellerID int64                  `json:"seller_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.NotZero(t, detail.SellerID)

	// 查看购买历史
	w = get(router, fmt.Sprintf("/purchase/%d", login.UserID))
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Orders    []map[string]interface{}            `json:"orders"`
		Trackings map[string][]map[string]interface{} `json:"trackings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.NotEmpty(t, history.Orders)
	assert.Len(t, history.Trackings, lenDistinctOrders(history.Orders))

	// 发表评价
	w = postJSON(router, "/review/0", gin.H{
		"user_id":    login.UserID,
		"product_id": productID,
		"rating":     5,
		"comment":    "Great product!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", strings.TrimSpace(w.Body.String()))

	var review models.Review
	require.NoError(t, db.Where("user_id = ? AND comment = ?", login.UserID, "Great product!").First(&review).Error)

	// 商家回复后买家再次查看详情能看到回复
	w = postJSON(router, fmt.Sprintf("/reply/%d", review.ID), gin.H{"reply": "Thanks!"})
	require.Equal(t, http.StatusOK, w.Code)

	w = get(router, fmt.Sprintf("/product/%d", productID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thanks!")
}

// lenDistinctOrders 订单行中不同订单 ID 的数量
func lenDistinctOrders(orders []map[string]interface{}) int {
	seen := map[float64]bool{}
	for _, o := range orders {
		seen[o["order_id"].(float64)] = true
	}
	return len(seen)
}
