// Package auth 认证服务单元测试
package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zhumingyu/minishop-backend/internal/common/crypto"
	"github.com/zhumingyu/minishop-backend/internal/common/errors"
	"github.com/zhumingyu/minishop-backend/internal/models"
	"github.com/zhumingyu/minishop-backend/internal/repository"
)

// setupTestService 创建测试用认证服务
func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewService(repository.NewUserRepository(db)), db
}

func TestService_Login(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	user := &models.User{
		Username:     "alice",
		PasswordHash: crypto.HashPassword("123456"),
		UserType:     models.UserTypeCustomer,
	}
	require.NoError(t, db.Create(user).Error)

	t.Run("登录成功返回用户 ID", func(t *testing.T) {
		resp, err := svc.Login(ctx, &LoginRequest{
			Username:     "alice",
			PasswordHash: crypto.HashPassword("123456"),
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.UserID)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{
			Username:     "alice",
			PasswordHash: crypto.HashPassword("wrong"),
		})
		assert.ErrorIs(t, err, errors.ErrUnauthorized)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, &LoginRequest{
			Username:     "nobody",
			PasswordHash: crypto.HashPassword("123456"),
		})
		assert.ErrorIs(t, err, errors.ErrUnauthorized)
	})
}
