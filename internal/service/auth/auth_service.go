// Package auth 提供登录认证服务
package auth

import (
	"context"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/common/crypto"
	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// Service 认证服务
type Service struct {
	userRepo *repository.UserRepository
}

// NewService 创建认证服务
func NewService(userRepo *repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// LoginRequest 登录请求，password_hash 由客户端计算（SHA-256 十六进制）
type LoginRequest struct {
	Username     string `json:"username" binding:"required"`
	PasswordHash string `json:"password_hash" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	UserID int64 `json:"user_id"`
}

// Login 校验用户名和密码哈希，成功返回用户 ID
// 散列比较在服务层做恒定时间比较，不在 SQL 中比对
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUnauthorized
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if !crypto.VerifyHash(user.PasswordHash, req.PasswordHash) {
		return nil, errors.ErrUnauthorized
	}
	return &LoginResponse{UserID: user.ID}, nil
}
