// Package main 是应用程序入口
package main

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/zhumingyu/minishop-backend/internal/common/config"
	"github.com/zhumingyu/minishop-backend/internal/common/metrics"
	authHandler "github.com/zhumingyu/minishop-backend/internal/handler/auth"
	mallHandler "github.com/zhumingyu/minishop-backend/internal/handler/mall"
	orderHandler "github.com/zhumingyu/minishop-backend/internal/handler/order"
	userHandler "github.com/zhumingyu/minishop-backend/internal/handler/user"
	"github.com/zhumingyu/minishop-backend/internal/middleware"
	"github.com/zhumingyu/minishop-backend/internal/repository"
	authService "github.com/zhumingyu/minishop-backend/internal/service/auth"
	mallService "github.com/zhumingyu/minishop-backend/internal/service/mall"
	orderService "github.com/zhumingyu/minishop-backend/internal/service/order"
	userService "github.com/zhumingyu/minishop-backend/internal/service/user"
)

// setupRouter 设置路由
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
) {
	// 初始化仓储
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	shippingRepo := repository.NewShippingRepository(db)

	// 初始化服务
	authSvc := authService.NewService(userRepo)
	userSvc := userService.NewService(userRepo)
	searchSvc := mallService.NewSearchService(productRepo)
	productSvc := mallService.NewProductService(productRepo, reviewRepo)
	reviewSvc := mallService.NewReviewService(reviewRepo)
	historySvc := orderService.NewHistoryService(orderRepo, shippingRepo)

	// 初始化处理器
	authH := authHandler.NewHandler(authSvc)
	userH := userHandler.NewHandler(userSvc)
	productH := mallHandler.NewProductHandler(productSvc, searchSvc)
	reviewH := mallHandler.NewReviewHandler(reviewSvc)
	historyH := orderHandler.NewHandler(historySvc)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.CORS(&middleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(middleware.AccessLog(logger))

	// 指标采集
	if cfg.Metrics.Enabled {
		m := metrics.Init("minishop")
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	// 健康检查
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db))

	// 业务路由，路径与响应体保持既有客户端兼容
	// 登录接口按 IP 限流，抑制口令暴力尝试
	loginHandlers := []gin.HandlerFunc{authH.Login}
	if cfg.RateLimit.Enabled {
		limiter := middleware.IPRateLimit(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
		loginHandlers = []gin.HandlerFunc{limiter, authH.Login}
	}
	r.POST("/login", loginHandlers...)
	r.POST("/search", productH.Search)

	r.GET("/profile/:user_id", userH.GetProfile)
	r.POST("/profile/:user_id", userH.UpdateProfile)

	r.GET("/purchase/:user_id", historyH.GetPurchaseHistory)
	r.GET("/product/:product_id", productH.GetDetail)

	// 评价与回复。GET 触发删除是既有客户端依赖的行为，
	// 同时提供语义正确的 DELETE 别名
	r.POST("/review/:review_id", reviewH.AddReview)
	r.GET("/review/:review_id", reviewH.DeleteReview)
	r.DELETE("/review/:review_id", reviewH.DeleteReview)

	r.POST("/reply/:review_id", reviewH.AddReply)
	r.GET("/reply/:review_id", reviewH.DeleteReply)
	r.DELETE("/reply/:review_id", reviewH.DeleteReply)
}
