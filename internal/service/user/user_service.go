// Package user 提供用户资料服务
package user

import (
	"context"
	stderrors "errors"
	"strings"

	"gorm.io/gorm"

	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// Service 用户服务
type Service struct {
	userRepo *repository.UserRepository
}

// NewService 创建用户服务
func NewService(userRepo *repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// ProfileInfo 用户资料，未填写的联系方式序列化为 null
type ProfileInfo struct {
	Username    string  `json:"username"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// UpdateProfileRequest 资料更新请求，仅更新出现的字段
type UpdateProfileRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	PhoneNumber  *string `json:"phone_number"`
	Address      *string `json:"address"`
	PasswordHash *string `json:"password_hash"`
}

// GetProfile 获取用户资料
func (s *Service) GetProfile(ctx context.Context, userID int64) (*ProfileInfo, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return &ProfileInfo{
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
	}, nil
}

// UpdateProfile 部分更新用户资料
// 用户不存在返回 ErrUserNotFound，唯一约束冲突返回 ErrUserConflict
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	if !exists {
		return errors.ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.PasswordHash != nil {
		fields["password_hash"] = *req.PasswordHash
	}

	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		if isUniqueViolation(err) {
			return errors.ErrUserConflict.WithError(err)
		}
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}

// isUniqueViolation 判断存储错误是否为唯一约束冲突
// sqlite 与 postgres 的驱动错误文本不同，统一在此识别
func isUniqueViolation(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
