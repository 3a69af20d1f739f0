// Package repository 用户仓储单元测试
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zhumingyu/minishop-backend/internal/models"
)

// setupUserTestDB 创建用户测试数据库
func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	return db
}

// newTestUser 构造测试用户
func newTestUser(username, passwordHash string) *models.User {
	email := username + "@example.com"
	phone := "1380000" + username
	address := "测试地址"
	return &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        &email,
		PhoneNumber:  &phone,
		Address:      &address,
		UserType:     models.UserTypeCustomer,
	}
}

func TestUserRepository_Create(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("alice", "hash-alice")
	err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	// 验证用户已创建
	var found models.User
	db.First(&found, user.ID)
	assert.Equal(t, "alice", found.Username)
}

func TestUserRepository_GetByID(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("bob", "hash-bob")
	db.Create(user)

	t.Run("获取存在的用户", func(t *testing.T) {
		found, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "bob", found.Username)
	})

	t.Run("获取不存在的用户", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("carol", "hash-carol")
	db.Create(user)

	t.Run("用户名存在", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "hash-carol", found.PasswordHash)
	})

	t.Run("用户名不存在", func(t *testing.T) {
		_, err := repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestUserRepository_UpdateFields(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("dave", "hash-dave")
	db.Create(user)

	t.Run("部分更新", func(t *testing.T) {
		err := repo.UpdateFields(ctx, user.ID, map[string]interface{}{
			"address": "新地址",
		})
		require.NoError(t, err)

		var found models.User
		db.First(&found, user.ID)
		assert.Equal(t, "新地址", *found.Address)
		// 未出现在 fields 中的列保持不变
		assert.Equal(t, "dave@example.com", *found.Email)
	})

	t.Run("空 fields 不报错", func(t *testing.T) {
		err := repo.UpdateFields(ctx, user.ID, nil)
		require.NoError(t, err)
	})

	t.Run("唯一约束冲突", func(t *testing.T) {
		other := newTestUser("erin", "hash-erin")
		db.Create(other)

		err := repo.UpdateFields(ctx, other.ID, map[string]interface{}{
			"email": "dave@example.com",
		})
		assert.Error(t, err)
	})
}

func TestUserRepository_ExistsByID(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("frank", "hash-frank")
	db.Create(user)

	t.Run("用户存在", func(t *testing.T) {
		exists, err := repo.ExistsByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("用户不存在", func(t *testing.T) {
		exists, err := repo.ExistsByID(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
