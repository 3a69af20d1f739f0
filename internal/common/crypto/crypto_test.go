// Package crypto 密码散列单元测试
package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("与存量口令散列一致", func(t *testing.T) {
		// echo -n 123456 | sha256sum
		assert.Equal(t,
			"8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92",
			HashPassword("123456"),
		)
	})

	t.Run("相同输入得到相同散列", func(t *testing.T) {
		assert.Equal(t, HashPassword("678901"), HashPassword("678901"))
	})
}

func TestVerifyHash(t *testing.T) {
	stored := HashPassword("123456")

	t.Run("散列匹配", func(t *testing.T) {
		assert.True(t, VerifyHash(stored, HashPassword("123456")))
	})

	t.Run("散列不匹配", func(t *testing.T) {
		assert.False(t, VerifyHash(stored, HashPassword("wrong")))
	})

	t.Run("长度不同", func(t *testing.T) {
		assert.False(t, VerifyHash(stored, "abc"))
	})
}
