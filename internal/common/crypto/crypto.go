// Package crypto 提供密码散列工具
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword 计算密码的 SHA-256 十六进制散列
// 与既有存量口令散列保持一致：无盐、客户端可预先计算
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyHash 比较存储散列与客户端提交的散列，使用恒定时间比较
func VerifyHash(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
